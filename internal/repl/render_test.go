package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/bft-labs/shiptraffic/internal/domain"
)

func TestNewRenderer(t *testing.T) {
	if _, ok := NewRenderer(FormatJSON).(JSONRenderer); !ok {
		t.Error("NewRenderer(json) is not a JSONRenderer")
	}
	if _, ok := NewRenderer(FormatText).(TextRenderer); !ok {
		t.Error("NewRenderer(text) is not a TextRenderer")
	}
	if _, ok := NewRenderer("xml").(TextRenderer); !ok {
		t.Error("NewRenderer(xml) does not fall back to text")
	}
}

func TestJSONRenderer_Session(t *testing.T) {
	input := "show_countries\ntop_countries 1\nships_by_types\nhelp\nq\n"
	var out bytes.Buffer
	s := NewSession(scenario(), strings.NewReader(input), &out, WithRenderer(JSONRenderer{}))
	if err := s.Banner(); err != nil {
		t.Fatalf("Banner() error: %v", err)
	}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out.String())
	}

	var countries struct {
		Countries []string `json:"countries"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &countries); err != nil {
		t.Fatalf("decode countries: %v", err)
	}
	if strings.Join(countries.Countries, ",") != "DE,FR,US" {
		t.Errorf("countries = %v, want [DE FR US]", countries.Countries)
	}

	var top struct {
		Top       int `json:"top"`
		Countries []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"countries"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &top); err != nil {
		t.Fatalf("decode top: %v", err)
	}
	if top.Top != 1 || len(top.Countries) != 1 || top.Countries[0].Key != "US" || top.Countries[0].Count != 2 {
		t.Errorf("top = %+v, want top 1 [US 2]", top)
	}

	var types struct {
		Types []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"types"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &types); err != nil {
		t.Fatalf("decode types: %v", err)
	}
	if len(types.Types) != 3 || types.Types[2].Key != "" || types.Types[2].Count != 1 {
		t.Errorf("types = %+v, want unknown group last", types)
	}

	var help struct {
		Commands []commandDoc `json:"commands"`
	}
	if err := json.Unmarshal([]byte(lines[3]), &help); err != nil {
		t.Fatalf("decode help: %v", err)
	}
	if len(help.Commands) != len(Commands()) {
		t.Errorf("help lists %d commands, want %d", len(help.Commands), len(Commands()))
	}

	if lines[4] != "Goodbye!" {
		t.Errorf("last line = %q, want Goodbye!", lines[4])
	}
}

func TestTextRenderer_HelpMatchesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := (TextRenderer{}).Help(&buf, Commands()); err != nil {
		t.Fatalf("Help() error: %v", err)
	}

	for _, c := range Commands() {
		if !strings.Contains(buf.String(), c.Usage+": "+c.Description+"\n") {
			t.Errorf("help missing %q", c.Usage)
		}
	}
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, io.ErrShortWrite
}

func TestRenderers_ReturnWriteErrors(t *testing.T) {
	counts := []domain.Count{{Key: "US", Count: 2}, {Key: "FR", Count: 1}}
	renderers := map[string]Renderer{"text": TextRenderer{}, "json": JSONRenderer{}}

	for name, r := range renderers {
		calls := map[string]func(w io.Writer) error{
			"help":      func(w io.Writer) error { return r.Help(w, Commands()) },
			"countries": func(w io.Writer) error { return r.Countries(w, []string{"FR", "US"}) },
			"top":       func(w io.Writer) error { return r.TopCountries(w, 2, counts) },
			"types":     func(w io.Writer) error { return r.ShipTypes(w, counts) },
			"usage":     func(w io.Writer) error { return r.Usage(w, "q") },
			"invalid":   func(w io.Writer) error { return r.InvalidCommand(w) },
			"farewell":  func(w io.Writer) error { return r.Farewell(w) },
		}
		for call, fn := range calls {
			w := &countingWriter{}
			if err := fn(w); !errors.Is(err, io.ErrShortWrite) {
				t.Errorf("%s %s error = %v, want %v", name, call, err, io.ErrShortWrite)
			}
			if w.writes != 1 {
				t.Errorf("%s %s wrote %d times after failure, want 1", name, call, w.writes)
			}
		}
	}
}
