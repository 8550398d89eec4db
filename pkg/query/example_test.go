package query_test

import (
	"fmt"

	"github.com/bft-labs/shiptraffic/internal/domain"
	"github.com/bft-labs/shiptraffic/pkg/query"
)

func ExampleTopCountries() {
	ds := domain.NewDataset([]domain.Record{
		{Country: "US", TypeSummary: "Cargo"},
		{Country: "US", TypeSummary: "Tanker"},
		{Country: "FR", TypeSummary: "Cargo"},
	})

	top, _ := query.TopCountries(ds, 1)
	for _, c := range top {
		fmt.Printf("%s: %d ships\n", c.Key, c.Count)
	}
	// Output: US: 2 ships
}

func ExampleShipsByType() {
	ds := domain.NewDataset([]domain.Record{
		{Country: "US", TypeSummary: "Cargo"},
		{Country: "US"},
		{Country: "FR", TypeSummary: "Cargo"},
	})

	for _, c := range query.ShipsByType(ds) {
		fmt.Printf("%q: %d\n", c.Key, c.Count)
	}
	// Output:
	// "Cargo": 2
	// "": 1
}
