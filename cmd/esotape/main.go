package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/esotape/cmds"
	"github.com/reusee/esotape/configs"
	"github.com/reusee/esotape/debugs"
	"github.com/reusee/esotape/esoconfigs"
	"github.com/reusee/esotape/interps"
	"github.com/reusee/esotape/lexers"
	"github.com/reusee/esotape/logs"
	"github.com/reusee/esotape/modes"
	"github.com/reusee/esotape/sources"
)

var (
	programFlag = cmds.Var[string]("-program", "program source text")
	fileFlag    = cmds.Var[string]("-file", "load the program from a path, an http(s) url, or - for stdin")
	inputFlag   = cmds.Var[string]("-input", "input bytes; without it one line is read from stdin")
	noInputFlag = cmds.Switch("-no-input", "run with empty input instead of reading stdin")
	dumpFlag    = cmds.Switch("-dump", "print the program as brainfuck instead of running it")
	tapFlag     = cmds.Switch("-tap", "open a starlark repl on the machine state after the run")
)

var positional []string

func init() {
	cmds.DefineFallback(cmds.Func(func(arg string) {
		positional = append(positional, arg)
	}).Desc("program source text"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(interps.Module),
		new(sources.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	var failed bool
	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		load sources.Load,
		stdin sources.Stdin,
		dialect esoconfigs.DefaultDialect,
		interpret interps.Interpret,
		tap debugs.Tap,
	) {
		ctx := context.Background()

		if err := loader.Err(); err != nil {
			logger.Error("load config", "error", err)
			failed = true
			return
		}

		logger.Debug("reading code")
		source, err := programSource(ctx, load)
		if err != nil {
			logger.Error("read program", "error", err)
			failed = true
			return
		}

		if *dumpFlag {
			program, err := lexers.Lex(lexers.Dialect(dialect), source)
			if err != nil {
				logger.Error("lex", "dialect", dialect, "error", err)
				failed = true
				return
			}
			fmt.Println(program.Brainfuck())
			return
		}

		input, err := programInput(stdin)
		if err != nil {
			logger.Error("read input", "error", err)
			failed = true
			return
		}

		logger.Debug("executing", "dialect", dialect)
		result, err := interpret(ctx, source, input)
		if result != nil {
			if _, err := os.Stdout.Write(result.Output()); err != nil {
				logger.Error("write output", "error", err)
				failed = true
			}
		}

		if *tapFlag && result != nil {
			tap(ctx, "machine", debugs.MachineGlobals(result.Machine, result.Status))
		}

		if err != nil {
			logger.Error("execution halted", "error", err)
			failed = true
			return
		}
		logger.Info("executed",
			"status", result.Status,
			"steps", result.Machine.Steps,
		)
	})

	if failed {
		os.Exit(1)
	}
}

var errNoProgram = errors.New("no program, provide it as first argument, with -program or with -file")

func programSource(ctx context.Context, load sources.Load) (string, error) {
	switch {
	case *fileFlag != "":
		return load(ctx, *fileFlag)
	case *programFlag != "":
		return *programFlag, nil
	case len(positional) > 0:
		return positional[0], nil
	}
	return "", errNoProgram
}

func programInput(stdin io.Reader) ([]byte, error) {
	if *inputFlag != "" {
		return []byte(*inputFlag), nil
	}
	if *noInputFlag {
		return nil, nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(line), nil
}
