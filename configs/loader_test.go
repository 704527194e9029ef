package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
tape_size?: int & >0
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if str := First[string](loader, "str"); str != "" {
		t.Fatalf("got %q", str)
	}
}

type testTapeSize int

var _ Configurable = testTapeSize(0)

func (testTapeSize) ConfigExpr() string {
	return "tape_size"
}

func TestGet(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test2.cue",
		"testdata/test.cue",
	}, testSchema)
	if n := Get[testTapeSize](loader); n != 200 {
		t.Fatalf("got %v", n)
	}
	if str := First[string](loader, "str"); str != "foo" {
		t.Fatalf("got %q", str)
	}
	if n := First[int](loader, "not"); n != 0 {
		t.Fatalf("got %v", n)
	}
}
