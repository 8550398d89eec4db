package query

import (
	"fmt"
	"sort"

	"github.com/bft-labs/shiptraffic/internal/domain"
)

// DistinctCountries returns the unique countries in ascending lexicographic order.
func DistinctCountries(ds *domain.Dataset) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for i := 0; i < ds.Len(); i++ {
		c := ds.At(i).Country
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

// TopCountries returns the n countries with the most records, largest first.
// If n exceeds the number of countries, all of them are returned.
func TopCountries(ds *domain.Dataset, n int) ([]domain.Count, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count must be non-negative, got %d", domain.ErrInvalidArgument, n)
	}
	counts := countBy(ds, func(r domain.Record) string { return r.Country })
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts, nil
}

// ShipsByType returns the number of records per ship type, largest first.
// Records without a type summary are counted under domain.UnknownType.
func ShipsByType(ds *domain.Dataset) []domain.Count {
	return countBy(ds, func(r domain.Record) string { return r.TypeSummary })
}

// countBy groups records by key in first-seen order, then stable-sorts the
// groups by descending count so ties keep that order.
func countBy(ds *domain.Dataset, key func(domain.Record) string) []domain.Count {
	index := make(map[string]int)
	counts := make([]domain.Count, 0)

	for i := 0; i < ds.Len(); i++ {
		k := key(ds.At(i))
		pos, ok := index[k]
		if !ok {
			pos = len(counts)
			index[k] = pos
			counts = append(counts, domain.Count{Key: k})
		}
		counts[pos].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
