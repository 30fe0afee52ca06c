package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title          string  `yaml:"Title"`
	Model          string  `yaml:"Model"` // FiniteDifference or Galerkin
	Nodes          int     `yaml:"Nodes"` // interior nodes (FD) or segments (Galerkin)
	Length         float64 `yaml:"Length"`
	LeftBC         float64 `yaml:"LeftBC"`
	RightBC        float64 `yaml:"RightBC"`
	Conductivity   float64 `yaml:"Conductivity"`
	Source         string  `yaml:"Source"`
	StudyLevels    int     `yaml:"StudyLevels"`
	Rule           string  `yaml:"Rule"` // Trapezoid, Simpson, Romberg or Adaptive
	XLeft          float64 `yaml:"XLeft"`
	XRight         float64 `yaml:"XRight"`
	Panels         int     `yaml:"Panels"`
	Tolerance      float64 `yaml:"Tolerance"`
	MaxRefinements int     `yaml:"MaxRefinements"`
	Integrand      string  `yaml:"Integrand"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if len(ip.Model) != 0 {
		fmt.Printf("[%s]\t\t= Model\n", ip.Model)
		fmt.Printf("[%d]\t\t\t= Nodes\n", ip.Nodes)
		fmt.Printf("%8.5f\t\t= Length\n", ip.Length)
		fmt.Printf("%8.5f\t\t= LeftBC\n", ip.LeftBC)
		fmt.Printf("%8.5f\t\t= RightBC\n", ip.RightBC)
		fmt.Printf("%8.5f\t\t= Conductivity\n", ip.Conductivity)
		fmt.Printf("[%s]\t\t= Source\n", ip.Source)
	}
	if len(ip.Rule) != 0 {
		fmt.Printf("[%s]\t\t= Rule\n", ip.Rule)
		fmt.Printf("[%s]\t\t= Integrand\n", ip.Integrand)
		fmt.Printf("%8.5f\t\t= XLeft\n", ip.XLeft)
		fmt.Printf("%8.5f\t\t= XRight\n", ip.XRight)
		fmt.Printf("[%d]\t\t\t= Panels\n", ip.Panels)
		fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
	}
}
