package repl

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/bft-labs/shiptraffic/internal/domain"
)

// JSONRenderer writes one JSON document per command result. Messages are
// plain text lines, and there is no banner or prompt, so output can be piped.
type JSONRenderer struct {
	TextRenderer
}

type commandDoc struct {
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
	Args        int    `json:"args"`
}

func (JSONRenderer) Banner(io.Writer) error         { return nil }
func (JSONRenderer) Prompt(io.Writer, string) error { return nil }

func (r JSONRenderer) Help(w io.Writer, cmds []Command) error {
	docs := make([]commandDoc, 0, len(cmds))
	for _, c := range cmds {
		docs = append(docs, commandDoc{Name: c.Name, Usage: c.Usage, Description: c.Description, Args: c.Args})
	}
	return r.encode(w, map[string]interface{}{"commands": docs})
}

func (r JSONRenderer) Countries(w io.Writer, countries []string) error {
	return r.encode(w, map[string]interface{}{"countries": countries})
}

func (r JSONRenderer) TopCountries(w io.Writer, n int, counts []domain.Count) error {
	return r.encode(w, map[string]interface{}{"top": n, "countries": counts})
}

func (r JSONRenderer) ShipTypes(w io.Writer, counts []domain.Count) error {
	return r.encode(w, map[string]interface{}{"types": counts})
}

func (JSONRenderer) encode(w io.Writer, v interface{}) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
