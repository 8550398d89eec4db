package repl

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/shiptraffic/internal/domain"
	"github.com/bft-labs/shiptraffic/pkg/query"
)

// Kind identifies a command and selects its handler.
type Kind int

const (
	KindHelp Kind = iota
	KindShowCountries
	KindTopCountries
	KindShipsByTypes
	KindQuit

	numKinds
)

// handler runs a command whose argument count has already been checked.
type handler func(s *Session, args []string) (State, error)

// handlers is indexed by Kind.
var handlers = [numKinds]handler{
	KindHelp:          runHelp,
	KindShowCountries: runShowCountries,
	KindTopCountries:  runTopCountries,
	KindShipsByTypes:  runShipsByTypes,
	KindQuit:          runQuit,
}

// Command is one entry of the command table.
type Command struct {
	Kind        Kind
	Name        string
	Usage       string
	Description string
	Args        int
}

// commands is listed in help order.
var commands = []Command{
	{
		Kind:        KindHelp,
		Name:        "help",
		Usage:       "help",
		Description: "List all available commands.",
	},
	{
		Kind:        KindShowCountries,
		Name:        "show_countries",
		Usage:       "show_countries",
		Description: "Show all unique ship countries sorted alphabetically.",
	},
	{
		Kind:        KindTopCountries,
		Name:        "top_countries",
		Usage:       "top_countries <num>",
		Description: "Show the top <num> countries with the most ships.",
		Args:        1,
	},
	{
		Kind:        KindShipsByTypes,
		Name:        "ships_by_types",
		Usage:       "ships_by_types",
		Description: "Show how many ships there are of each type, most common first.",
	},
	{
		Kind:        KindQuit,
		Name:        "q",
		Usage:       "q",
		Description: "Quit the program.",
	},
}

var commandsByName = indexCommands(commands)

func indexCommands(cmds []Command) map[string]Command {
	m := make(map[string]Command, len(cmds))
	for _, c := range cmds {
		m[c.Name] = c
	}
	return m
}

// Commands returns a copy of the command table in help order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// Lookup resolves a normalized command name.
func Lookup(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}

// dispatch runs the handler registered for the command's kind.
func (s *Session) dispatch(cmd Command, args []string) (State, error) {
	if cmd.Kind < 0 || cmd.Kind >= numKinds || handlers[cmd.Kind] == nil {
		return s.state, fmt.Errorf("%w: no handler for %q", domain.ErrInvalidCommand, cmd.Name)
	}
	return handlers[cmd.Kind](s, args)
}

func runHelp(s *Session, _ []string) (State, error) {
	return Running, writeErr(s.renderer.Help(s.out, s.commands))
}

func runShowCountries(s *Session, _ []string) (State, error) {
	return Running, writeErr(s.renderer.Countries(s.out, query.DistinctCountries(s.ds)))
}

func runTopCountries(s *Session, args []string) (State, error) {
	n, err := parseCount(args[0])
	if err != nil {
		return Running, err
	}
	top, err := query.TopCountries(s.ds, n)
	if err != nil {
		return Running, err
	}
	return Running, writeErr(s.renderer.TopCountries(s.out, n, top))
}

func runShipsByTypes(s *Session, _ []string) (State, error) {
	return Running, writeErr(s.renderer.ShipTypes(s.out, query.ShipsByType(s.ds)))
}

func runQuit(s *Session, _ []string) (State, error) {
	if err := s.renderer.Farewell(s.out); err != nil {
		return Running, writeErr(err)
	}
	return Stopped, nil
}

// parseCount accepts decimal digits only, so signs and blanks are rejected.
func parseCount(arg string) (int, error) {
	n, err := strconv.ParseUint(arg, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", domain.ErrInvalidArgument, arg)
	}
	return int(n), nil
}
