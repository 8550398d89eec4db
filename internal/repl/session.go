package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/shiptraffic/internal/domain"
	"github.com/bft-labs/shiptraffic/pkg/log"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "Please enter command: "

// Session is one interactive run of the command loop over a dataset.
type Session struct {
	ds       *domain.Dataset
	in       *bufio.Reader
	out      *bufio.Writer
	renderer Renderer
	prompt   string
	logger   log.Logger

	commands []Command
	state    State
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt text.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithRenderer sets the output renderer.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session reading commands from in and writing results to out.
func NewSession(ds *domain.Dataset, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ds:       ds,
		in:       bufio.NewReader(in),
		out:      bufio.NewWriter(out),
		renderer: TextRenderer{},
		prompt:   DefaultPrompt,
		logger:   log.NewNoopLogger(),
		commands: Commands(),
		state:    Running,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current loop state.
func (s *Session) State() State {
	return s.state
}

// Banner writes the startup banner.
func (s *Session) Banner() error {
	if err := s.renderer.Banner(s.out); err != nil {
		return writeErr(err)
	}
	return s.flush()
}

// Run reads and executes commands until the quit command, the end of input or
// context cancellation. Rejected commands do not end the loop; only read and
// write failures are returned.
func (s *Session) Run(ctx context.Context) error {
	for state := s.state; state == Running; {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.renderer.Prompt(s.out, s.prompt); err != nil {
			return writeErr(err)
		}
		if err := s.flush(); err != nil {
			return err
		}

		// Lines have no length limit; an oversized line is just an unknown command.
		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("repl: read input: %w", readErr)
		}

		if line != "" {
			var err error
			state, err = s.Execute(line)
			if err != nil {
				if !rejected(err) {
					return err
				}
				s.logger.Debug("command rejected", log.Err(err))
			}
			if err := s.flush(); err != nil {
				return err
			}
		}

		if readErr != nil && state == Running {
			s.logger.Debug("end of input, stopping")
			s.state = Stopped
			return nil
		}
	}
	return nil
}

// Execute runs a single input line and returns the resulting state. An error
// wrapping domain.ErrInvalidCommand or domain.ErrInvalidArgument has already
// been reported to the user; any other error is an output failure. Once
// stopped, input is ignored.
func (s *Session) Execute(line string) (State, error) {
	if s.state == Stopped {
		return Stopped, nil
	}

	name, args := parseLine(line)
	if name == "" {
		return s.state, nil
	}

	cmd, ok := Lookup(name)
	if !ok {
		if err := s.renderer.InvalidCommand(s.out); err != nil {
			return s.state, writeErr(err)
		}
		return s.state, fmt.Errorf("%w: %q", domain.ErrInvalidCommand, truncate(name))
	}
	if len(args) != cmd.Args {
		return s.state, s.reject(cmd, fmt.Errorf("%w: %s takes %d argument(s), got %d",
			domain.ErrInvalidArgument, cmd.Name, cmd.Args, len(args)))
	}

	next, err := s.dispatch(cmd, args)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return s.state, s.reject(cmd, err)
		}
		return s.state, err
	}

	s.logger.Debug("command executed", log.String("command", cmd.Name), log.Strings("args", args))
	s.state = next
	return next, nil
}

// reject prints the command's usage line and returns cause, unless the usage
// line itself could not be written.
func (s *Session) reject(cmd Command, cause error) error {
	if err := s.renderer.Usage(s.out, cmd.Usage); err != nil {
		return writeErr(err)
	}
	return cause
}

// rejected reports whether err is a user input error the loop recovers from.
func rejected(err error) bool {
	return errors.Is(err, domain.ErrInvalidCommand) || errors.Is(err, domain.ErrInvalidArgument)
}

const maxLoggedName = 64

func truncate(name string) string {
	if len(name) <= maxLoggedName {
		return name
	}
	return name[:maxLoggedName] + "..."
}

// parseLine splits a line into a lowercased command key and lowercased arguments.
func parseLine(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	args := fields[1:]
	for i, a := range args {
		args[i] = strings.ToLower(a)
	}
	return strings.ToLower(fields[0]), args
}

func (s *Session) flush() error {
	return writeErr(s.out.Flush())
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("repl: write output: %w", err)
}
