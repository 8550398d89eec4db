// Package dataset loads ship-traffic records from disk.
//
// The on-disk document is an object with a top-level "data" collection of
// record objects, each carrying at least COUNTRY and optionally TYPE_SUMMARY:
//
//	{"data": [{"COUNTRY": "US", "TYPE_SUMMARY": "Cargo"}, ...]}
//
// JSON is the default encoding; files ending in .yaml or .yml are read as YAML.
// Record keys are matched case-insensitively (COUNTRY, Country and country are
// the same field).
//
// # Usage
//
//	ds, err := dataset.Load("ship_traffic_data.json")
//	if errors.Is(err, domain.ErrDataUnavailable) {
//	    // file missing or unreadable
//	}
//
// A Watcher can be started to report when the file changes on disk. The loaded
// Dataset is never reloaded; the watcher only logs.
//
// # Version
//
// Current version: 1.0.0
package dataset
