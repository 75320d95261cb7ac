package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// One section of a batch run, zero Resolution or NumPanels fall back to the run level values
type AirfoilInput struct {
	Name       string `json:"Name"`
	NACA       string `json:"NACA"`
	File       string `json:"File"`
	Resolution int    `json:"Resolution"`
	NumPanels  int    `json:"NumPanels"`
}

// Parameters obtained from the YAML input file
type RunParameters struct {
	Title            string         `json:"Title"`
	Resolution       int            `json:"Resolution"`
	NumPanels        int            `json:"NumPanels"`
	Spacing          string         `json:"Spacing"`          // cosine or uniform
	VerticalSegments string         `json:"VerticalSegments"` // entry or error
	ParallelDegree   int            `json:"ParallelDegree"`
	OutputDir        string         `json:"OutputDir"`
	Plot             bool           `json:"Plot"`
	Airfoils         []AirfoilInput `json:"Airfoils"`
}

const (
	DefaultResolution = 100
	DefaultNumPanels  = 40
)

func (rp *RunParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, rp); err != nil {
		return
	}
	if rp.Resolution == 0 {
		rp.Resolution = DefaultResolution
	}
	if rp.NumPanels == 0 {
		rp.NumPanels = DefaultNumPanels
	}
	for i := range rp.Airfoils {
		ai := &rp.Airfoils[i]
		if ai.Resolution == 0 {
			ai.Resolution = rp.Resolution
		}
		if ai.NumPanels == 0 {
			ai.NumPanels = rp.NumPanels
		}
		if len(ai.Name) == 0 {
			if len(ai.NACA) != 0 {
				ai.Name = "NACA_" + ai.NACA
			} else {
				ai.Name = ai.File
			}
		}
	}
	return rp.Validate()
}

// Validate checks each section names exactly one source and that section names are unique
func (rp *RunParameters) Validate() (err error) {
	seen := make(map[string]int, len(rp.Airfoils))
	for i, ai := range rp.Airfoils {
		if j, ok := seen[ai.Name]; ok {
			return fmt.Errorf("airfoil %d [%s]: duplicate name, first used by airfoil %d", i, ai.Name, j)
		}
		seen[ai.Name] = i
		switch {
		case len(ai.NACA) != 0 && len(ai.File) != 0:
			return fmt.Errorf("airfoil %d [%s]: NACA and File are exclusive", i, ai.Name)
		case len(ai.NACA) == 0 && len(ai.File) == 0:
			return fmt.Errorf("airfoil %d [%s]: one of NACA or File is required", i, ai.Name)
		}
	}
	return
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%d]\t\t\t= Resolution\n", rp.Resolution)
	fmt.Printf("[%d]\t\t\t= Panels\n", rp.NumPanels)
	fmt.Printf("[%s]\t\t\t= Spacing\n", rp.Spacing)
	fmt.Printf("[%s]\t\t\t= Vertical Segments\n", rp.VerticalSegments)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", rp.ParallelDegree)
	if len(rp.OutputDir) != 0 {
		fmt.Printf("\"%s\"\t\t= Output Directory\n", rp.OutputDir)
	}
	for i, ai := range rp.Airfoils {
		source := "NACA " + ai.NACA
		if len(ai.File) != 0 {
			source = ai.File
		}
		fmt.Printf("Airfoils[%d] = %s (%s), N = %d, Panels = %d\n", i, ai.Name, source, ai.Resolution, ai.NumPanels)
	}
}
