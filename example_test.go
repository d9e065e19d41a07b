package islandmap_test

import (
	"fmt"

	"github.com/islandforge/islandmap"
)

// Example generates a small island and reports how many Centers it holds
// and whether any coastal Center exists.
func Example() {
	m, err := islandmap.New(islandmap.Config{
		Width:       400,
		Height:      400,
		PointSpread: 30,
		Seed:        "pelican-cay",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m.Generate()

	centers, err := m.Centers()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	hasCoast := false
	for _, c := range centers {
		if c.Coast {
			hasCoast = true
			break
		}
	}

	fmt.Println(len(centers) > 0)
	fmt.Println(hasCoast)
}
