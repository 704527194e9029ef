package interps

import (
	"context"
	"fmt"

	"github.com/reusee/esotape/esoconfigs"
	"github.com/reusee/esotape/insts"
	"github.com/reusee/esotape/lexers"
	"github.com/reusee/esotape/logs"
	"github.com/reusee/esotape/machines"
)

type Result struct {
	Dialect lexers.Dialect
	Program insts.Program
	Machine *machines.Machine
	Status  machines.Status
}

func (r *Result) Output() []byte {
	if r == nil || r.Machine == nil {
		return nil
	}
	return r.Machine.Output
}

// Interpret lexes source in the configured dialect and runs it on a fresh machine.
// On an execution error the result is returned along with the error.
type Interpret func(ctx context.Context, source string, input []byte) (*Result, error)

func (Module) Interpret(
	dialect esoconfigs.DefaultDialect,
	tapeSize esoconfigs.TapeSize,
	matching esoconfigs.Matching,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Interpret {
	return func(ctx context.Context, source string, input []byte) (*Result, error) {
		ctx, span := newSpan(ctx, "")

		d := lexers.Dialect(dialect)
		logger.DebugContext(ctx, "tokenizing",
			"dialect", d,
			"source", len(source),
		)
		program, err := lexers.Lex(d, source)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("lex %v: %w", d, err))
		}
		logger.DebugContext(ctx, "tokenized",
			"program", program,
		)

		m := machines.New(program, input,
			machines.WithTapeSize(int(tapeSize)),
			machines.WithMatching(machines.Matching(matching)),
			machines.WithLogger(logger.With("logs.span", span)),
		)
		status, err := m.Run()
		result := &Result{
			Dialect: d,
			Program: program,
			Machine: m,
			Status:  status,
		}
		if err != nil {
			logger.ErrorContext(ctx, "execution failed",
				"error", err,
				"steps", m.Steps,
			)
			return result, logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "executed",
			"status", status,
			"steps", m.Steps,
			"output", len(m.Output),
		)
		return result, nil
	}
}
