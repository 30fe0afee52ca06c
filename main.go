package main

import "github.com/notargets/go1d/cmd"

func main() {
	cmd.Execute()
}
