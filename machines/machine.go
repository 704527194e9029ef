package machines

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/esotape/insts"
	"github.com/reusee/esotape/tapes"
)

type Status uint8

const (
	// program counter ran past the last instruction
	Completed Status = iota
	// an Exit instruction was executed
	Exited
	// a loop marker had no partner in the direction of travel
	Halted
	// a fatal error stopped the run
	Failed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Exited:
		return "exited"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

type Matching uint8

const (
	// LinearMatching jumps to the nearest opposite marker, ignoring nesting.
	LinearMatching Matching = iota
	// NestedMatching jumps to the properly nested partner.
	NestedMatching
)

func (m Matching) String() string {
	switch m {
	case LinearMatching:
		return "linear"
	case NestedMatching:
		return "nested"
	}
	return fmt.Sprintf("Matching(%d)", uint8(m))
}

func ParseMatching(str string) (Matching, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "linear":
		return LinearMatching, nil
	case "nested":
		return NestedMatching, nil
	}
	return 0, fmt.Errorf("unknown matching %q, should be linear or nested", str)
}

type Machine struct {
	Program insts.Program
	PC      int
	Tape    *tapes.Tape

	Input     []byte
	InputHead int
	Output    []byte

	// number of executed instructions
	Steps int

	matching Matching
	jumps    []int
	logger   *slog.Logger
}

type Option func(*options)

type options struct {
	tapeSize int
	matching Matching
	logger   *slog.Logger
}

func WithTapeSize(size int) Option {
	return func(o *options) {
		o.tapeSize = size
	}
}

func WithMatching(matching Matching) Option {
	return func(o *options) {
		o.matching = matching
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func New(program insts.Program, input []byte, opts ...Option) *Machine {
	o := options{
		tapeSize: tapes.DefaultSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Machine{
		Program:  program,
		Tape:     tapes.New(o.tapeSize),
		Input:    input,
		matching: o.matching,
		logger:   o.logger,
	}
	if m.matching == NestedMatching {
		m.jumps = jumpTable(program)
	}
	return m
}

func (m *Machine) Matching() Matching {
	return m.matching
}

// Execute runs program to its end on a fresh machine.
// Output buffered before a failure is returned along with the error.
func Execute(program insts.Program, input []byte, opts ...Option) ([]byte, Status, error) {
	m := New(program, input, opts...)
	status, err := m.Run()
	return m.Output, status, err
}
