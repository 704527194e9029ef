package tapes

import (
	"errors"
	"fmt"
)

const DefaultSize = 30_000

var ErrOutOfBounds = errors.New("tape head out of bounds")

type BoundsError struct {
	Head int
	Size int
}

func (b *BoundsError) Error() string {
	return fmt.Sprintf("%s: moving to %d on a tape of %d cells", ErrOutOfBounds.Error(), b.Head, b.Size)
}

func (b *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Tape is a fixed number of byte cells addressed by a single head.
// The head never leaves [0, Len()).
type Tape struct {
	cells []byte
	head  int
}

func New(size int) *Tape {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tape{
		cells: make([]byte, size),
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Head() int {
	return t.head
}

func (t *Tape) Right() error {
	return t.move(t.head + 1)
}

func (t *Tape) Left() error {
	return t.move(t.head - 1)
}

func (t *Tape) move(to int) error {
	if to < 0 || to >= len(t.cells) {
		return &BoundsError{
			Head: to,
			Size: len(t.cells),
		}
	}
	t.head = to
	return nil
}

func (t *Tape) Incr() {
	t.cells[t.head]++
}

func (t *Tape) Decr() {
	t.cells[t.head]--
}

func (t *Tape) Get() byte {
	return t.cells[t.head]
}

func (t *Tape) Set(b byte) {
	t.cells[t.head] = b
}

// AppendTo appends all cells in address order.
func (t *Tape) AppendTo(buf []byte) []byte {
	return append(buf, t.cells...)
}
