package response_test

import (
	"fmt"

	"github.com/merapilab/richter/response"
)

func ExampleLookup() {
	m, err := response.Lookup("MEPAS", "Z")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("sensitivity: %.0f counts per m/s\n", m.Sensitivity)
	fmt.Printf("poles: %d, zeros: %d\n", len(m.Poles), len(m.Zeros))
	// Output:
	// sensitivity: 994035785 counts per m/s
	// poles: 5, zeros: 2
}

func ExampleWoodAnderson() {
	wa := response.WoodAnderson()
	fmt.Printf("magnification: %.0f, gain: %.0f\n", wa.Sensitivity, wa.Gain)
	// Output:
	// magnification: 2800, gain: 1
}
