// Package domain contains the core entities and sentinel errors for shiptraffic.
//
// This package is the innermost layer. It has no dependencies on file formats,
// logging or the terminal and contains only the record model shared by the
// loader, the query engine and the command loop.
//
// # Entities
//
//   - [Record]: a single ship-traffic entry (flag country and ship type)
//   - [Dataset]: the read-only, ordered collection of records for one session
//   - [Count]: one grouping key together with the number of records in it
//
// Entities are immutable after construction. A Dataset hands out copies of its
// records so no query can observe a different snapshot than another.
package domain
