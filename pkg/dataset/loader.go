package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/shiptraffic/internal/domain"
)

// DefaultPath is the data file read when no path is configured.
const DefaultPath = "ship_traffic_data.json"

// collectionKey names the top-level record collection.
const collectionKey = "data"

// Format identifies the encoding of a data file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the encoding from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the data file at path.
func Load(path string) (*domain.Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrDataUnavailable, path, err)
	}
	ds, err := Decode(b, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a document in the given format into a Dataset.
func Decode(b []byte, f Format) (*domain.Dataset, error) {
	var (
		doc map[string]interface{}
		err error
	)
	switch f {
	case FormatYAML:
		doc, err = decodeYAML(b)
	default:
		doc, err = decodeJSON(b)
	}
	if err != nil {
		return nil, err
	}

	raw, ok := normalizeKeys(doc)[collectionKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing top-level %q collection", domain.ErrDataFormat, collectionKey)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want a list", domain.ErrDataFormat, collectionKey, raw)
	}

	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrDataFormat, i, err)
		}
		records = append(records, rec)
	}
	return domain.NewDataset(records), nil
}

// decodeJSON parses a JSON object. A document whose top-level value is a string
// holding the real document is unwrapped once.
func decodeJSON(b []byte) (map[string]interface{}, error) {
	var top interface{}
	if err := json.Unmarshal(b, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataFormat, err)
	}
	if wrapped, ok := top.(string); ok {
		top = nil
		if err := json.Unmarshal([]byte(wrapped), &top); err != nil {
			return nil, fmt.Errorf("%w: string-wrapped document: %v", domain.ErrDataFormat, err)
		}
	}
	doc, ok := top.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, want an object", domain.ErrDataFormat, top)
	}
	return doc, nil
}

func decodeYAML(b []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataFormat, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", domain.ErrDataFormat)
	}
	return doc, nil
}

func decodeRecord(item interface{}) (domain.Record, error) {
	var rec domain.Record

	m, ok := item.(map[string]interface{})
	if !ok {
		return rec, fmt.Errorf("got %T, want an object", item)
	}
	m = normalizeKeys(m)

	country, ok := m["country"]
	if !ok || country == nil {
		return rec, fmt.Errorf("missing COUNTRY")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &rec})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(m); err != nil {
		return rec, err
	}
	return rec, nil
}

// normalizeKeys maps every key to snake case so COUNTRY, Country and country match.
func normalizeKeys(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[strcase.ToSnake(k)] = v
	}
	return out
}
