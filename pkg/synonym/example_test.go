package synonym_test

import (
	"fmt"

	"github.com/matzehuels/scoreplot/pkg/synonym"
)

func ExampleResolveFormat() {
	for _, s := range []string{"horizontal", "Weighted Scatter", "3D", "4D super chart"} {
		fmt.Println(synonym.ResolveFormat(s))
	}
	// Output:
	// horizontalbar
	// scatterweighted
	// 3dbars
	// 4dsuperchart
}

func ExampleResolveValues() {
	fmt.Println(synonym.ResolveValues([]string{"pitchSpace", "Duration"}))
	// Output: [pitch quarterlength]
}
