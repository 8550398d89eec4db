// Package query implements the aggregation queries over a loaded dataset.
//
// Every function is pure: it reads the Dataset, never mutates it, and derives
// its result freshly on each call. Grouped results are sorted by descending
// count; groups with equal counts keep the order in which their key was first
// seen in the dataset.
//
// # Version
//
// Current version: 1.0.0
package query
