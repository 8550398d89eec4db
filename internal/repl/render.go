package repl

import (
	"fmt"
	"io"

	"github.com/bft-labs/shiptraffic/internal/domain"
)

// Output formats understood by NewRenderer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// unknownTypeLabel is shown for records without a type summary.
const unknownTypeLabel = "Unknown"

// Renderer writes command results and user-facing messages. Each method
// returns the first error hit while writing to w.
type Renderer interface {
	Banner(w io.Writer) error
	Prompt(w io.Writer, prompt string) error
	Help(w io.Writer, cmds []Command) error
	Countries(w io.Writer, countries []string) error
	TopCountries(w io.Writer, n int, counts []domain.Count) error
	ShipTypes(w io.Writer, counts []domain.Count) error
	Usage(w io.Writer, usage string) error
	InvalidCommand(w io.Writer) error
	Farewell(w io.Writer) error
}

// NewRenderer returns the renderer for an output format. Unknown formats fall
// back to text.
func NewRenderer(format string) Renderer {
	if format == FormatJSON {
		return JSONRenderer{}
	}
	return TextRenderer{}
}

// printer keeps the first write error and skips writes after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

// TextRenderer writes human-readable output.
type TextRenderer struct{}

func (TextRenderer) Banner(w io.Writer) error {
	p := &printer{w: w}
	p.printf("-----------------------------------\n")
	p.printf("Command Line Ships Traffic Analyzer\n")
	p.printf("-----------------------------------\n")
	return p.err
}

func (TextRenderer) Prompt(w io.Writer, prompt string) error {
	p := &printer{w: w}
	p.printf("%s", prompt)
	return p.err
}

func (TextRenderer) Help(w io.Writer, cmds []Command) error {
	p := &printer{w: w}
	p.printf("\nAvailable Commands:\n")
	for _, c := range cmds {
		p.printf("%s: %s\n", c.Usage, c.Description)
	}
	p.printf("\n")
	return p.err
}

func (TextRenderer) Countries(w io.Writer, countries []string) error {
	p := &printer{w: w}
	for _, c := range countries {
		p.printf("%s\n", c)
	}
	p.printf("\n")
	return p.err
}

func (TextRenderer) TopCountries(w io.Writer, n int, counts []domain.Count) error {
	p := &printer{w: w}
	p.printf("\nTop %d Countries:\n", n)
	for _, c := range counts {
		p.printf("%s: %d ships\n", c.Key, c.Count)
	}
	p.printf("\n")
	return p.err
}

func (TextRenderer) ShipTypes(w io.Writer, counts []domain.Count) error {
	p := &printer{w: w}
	p.printf("\nShips by Type:\n")
	for _, c := range counts {
		label := c.Key
		if label == domain.UnknownType {
			label = unknownTypeLabel
		}
		p.printf("%s: %d ships\n", label, c.Count)
	}
	p.printf("\n")
	return p.err
}

func (TextRenderer) Usage(w io.Writer, usage string) error {
	p := &printer{w: w}
	p.printf("Usage: %s\n", usage)
	return p.err
}

func (TextRenderer) InvalidCommand(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Please enter a valid command.\n\n")
	return p.err
}

func (TextRenderer) Farewell(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Goodbye!\n")
	return p.err
}
