package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	var titles []string
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		cs := studies[title]
		fmt.Printf("Title = %s\n", title)
		for i := range cs.n {
			fmt.Printf("%6d, %12.5e, %12.5e", cs.n[i], cs.h[i], cs.maxErr[i])
			if i > 0 {
				// observed order from consecutive refinement levels
				order := math.Log(cs.maxErr[i-1]/cs.maxErr[i]) / math.Log(cs.h[i-1]/cs.h[i])
				fmt.Printf(", order = %5.2f", order)
			}
			fmt.Printf("\n")
		}
	}
}

type ConvergenceStudy struct {
	title  string
	n      []int
	h      []float64
	maxErr []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(n int, h, maxErr float64) {
	cs.n = append(cs.n, n)
	cs.h = append(cs.h, h)
	cs.maxErr = append(cs.maxErr, maxErr)
}

// Rows are "title,n,h,maxErr" as written by `go1d bvp --study --csvFile`.
func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records [][]string
		err     error
		f       *os.File
		ok      bool
		cs      *ConvergenceStudy
		n       int
		h       float64
		maxErr  float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if len(rec) != 4 {
			fmt.Printf("skipping malformed row %d: %v\n", i, rec)
			continue
		}
		title := rec[0]
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		if n, err = strconv.Atoi(rec[1]); err != nil {
			panic(err)
		}
		if h, err = strconv.ParseFloat(rec[2], 64); err != nil {
			panic(err)
		}
		if maxErr, err = strconv.ParseFloat(rec[3], 64); err != nil {
			panic(err)
		}
		cs.Add(n, h, maxErr)
	}
	return
}
