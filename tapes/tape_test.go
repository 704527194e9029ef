package tapes

import (
	"errors"
	"testing"
)

func TestTape(t *testing.T) {
	tape := New(4)
	if tape.Len() != 4 {
		t.Fatalf("got %v", tape.Len())
	}

	tape.Decr()
	if tape.Get() != 255 {
		t.Fatalf("got %v", tape.Get())
	}
	tape.Incr()
	if tape.Get() != 0 {
		t.Fatalf("got %v", tape.Get())
	}

	if err := tape.Right(); err != nil {
		t.Fatal(err)
	}
	tape.Set(42)
	if tape.Head() != 1 {
		t.Fatalf("got %v", tape.Head())
	}
	if err := tape.Left(); err != nil {
		t.Fatal(err)
	}
	if tape.Get() != 0 {
		t.Fatalf("got %v", tape.Get())
	}

	buf := tape.AppendTo([]byte("x"))
	if string(buf) != "x\x00\x2a\x00\x00" {
		t.Fatalf("got %q", buf)
	}
}

func TestTapeDefaultSize(t *testing.T) {
	if n := New(0).Len(); n != DefaultSize {
		t.Fatalf("got %v", n)
	}
}

func TestTapeBounds(t *testing.T) {
	tape := New(2)

	err := tape.Left()
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	var boundsErr *BoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("got %v", err)
	}
	if boundsErr.Head != -1 || boundsErr.Size != 2 {
		t.Fatalf("got %+v", boundsErr)
	}
	if tape.Head() != 0 {
		t.Fatalf("got %v", tape.Head())
	}

	if err := tape.Right(); err != nil {
		t.Fatal(err)
	}
	if err := tape.Right(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	if tape.Head() != 1 {
		t.Fatalf("got %v", tape.Head())
	}
}
