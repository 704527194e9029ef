package esoconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/esotape/cmds"
	"github.com/reusee/esotape/configs"
	"github.com/reusee/esotape/lexers"
	"github.com/reusee/esotape/machines"
	"github.com/reusee/esotape/modes"
	"github.com/reusee/esotape/tapes"
)

func newScope(t *testing.T, paths ...string) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(paths, schema)),
	)
}

func TestDefaults(t *testing.T) {
	newScope(t).Call(func(
		size TapeSize,
		dialect DefaultDialect,
		matching Matching,
	) {
		if size != tapes.DefaultSize {
			t.Fatalf("got %v", size)
		}
		if lexers.Dialect(dialect) != lexers.Brainfuck {
			t.Fatalf("got %v", dialect)
		}
		if machines.Matching(matching) != machines.LinearMatching {
			t.Fatalf("got %v", matching)
		}
	})
}

func TestConfigFile(t *testing.T) {
	newScope(t, "testdata/esotape.cue").Call(func(
		size TapeSize,
		dialect DefaultDialect,
		matching Matching,
	) {
		if size != 64 {
			t.Fatalf("got %v", size)
		}
		if lexers.Dialect(dialect) != lexers.Spoon {
			t.Fatalf("got %v", dialect)
		}
		if machines.Matching(matching) != machines.NestedMatching {
			t.Fatalf("got %v", matching)
		}
	})
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	defer func() {
		cmds.GlobalExecutor.MustExecute([]string{"-tape-size."})
		dialectFlag = nil
		matchingFlag = nil
	}()
	cmds.GlobalExecutor.MustExecute([]string{
		"-tape-size", "7",
		"--ook",
		"-linear",
	})
	newScope(t, "testdata/esotape.cue").Call(func(
		size TapeSize,
		dialect DefaultDialect,
		matching Matching,
	) {
		if size != 7 {
			t.Fatalf("got %v", size)
		}
		if dialect.String() != "ook" {
			t.Fatalf("got %v", dialect)
		}
		if matching.String() != "linear" {
			t.Fatalf("got %v", matching)
		}
	})
}

func TestDialectFlag(t *testing.T) {
	defer func() {
		dialectFlag = nil
	}()
	if err := cmds.GlobalExecutor.Execute([]string{"-dialect", "cow"}); err == nil {
		t.Fatal("should error")
	}
	if err := cmds.GlobalExecutor.Execute([]string{"-dialect", "Spoon"}); err != nil {
		t.Fatal(err)
	}
	newScope(t).Call(func(
		dialect DefaultDialect,
	) {
		if lexers.Dialect(dialect) != lexers.Spoon {
			t.Fatalf("got %v", dialect)
		}
	})
}

func TestSchemaRejectsUnknownDialect(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/bad.cue"}, schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestConfigsLoader(t *testing.T) {
	defer func() {
		*configFlag = nil
	}()
	cmds.GlobalExecutor.MustExecute([]string{
		"-config", "testdata/esotape.cue",
	})
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
	) {
		paths := loader.Paths()
		if len(paths) == 0 || paths[0] != "testdata/esotape.cue" {
			t.Fatalf("got %v", paths)
		}
		if err := loader.Err(); err != nil {
			t.Fatal(err)
		}
	})
}
