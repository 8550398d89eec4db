// Package shiptraffic exposes the ship-traffic loader and queries as a library.
//
// Example usage:
//
//	ds, err := shiptraffic.Load("ship_traffic_data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	top, _ := shiptraffic.TopCountries(ds, 5)
package shiptraffic

import (
	"github.com/bft-labs/shiptraffic/internal/domain"
	"github.com/bft-labs/shiptraffic/pkg/dataset"
	"github.com/bft-labs/shiptraffic/pkg/query"
)

// Record is a single ship-traffic entry.
type Record = domain.Record

// Dataset is the read-only collection of records loaded from a data file.
type Dataset = domain.Dataset

// Count is a grouping key with the number of records in the group.
type Count = domain.Count

// Errors returned by Load and TopCountries; check them with errors.Is.
var (
	ErrDataUnavailable = domain.ErrDataUnavailable
	ErrDataFormat      = domain.ErrDataFormat
	ErrInvalidArgument = domain.ErrInvalidArgument
)

// NewDataset builds a dataset from records already in memory.
func NewDataset(records []Record) *Dataset {
	return domain.NewDataset(records)
}

// Load reads a JSON or YAML data file.
func Load(path string) (*Dataset, error) {
	return dataset.Load(path)
}

// DistinctCountries returns the unique countries in ascending order.
func DistinctCountries(ds *Dataset) []string {
	return query.DistinctCountries(ds)
}

// TopCountries returns the n countries with the most ships.
func TopCountries(ds *Dataset, n int) ([]Count, error) {
	return query.TopCountries(ds, n)
}

// ShipsByType returns ship counts per type, largest first.
func ShipsByType(ds *Dataset) []Count {
	return query.ShipsByType(ds)
}
