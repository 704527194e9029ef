package lexers

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedWord = errors.New("last ook has been partially eaten, please restitute the end")
	ErrUnpairedWord  = errors.New("last ook is alone, please give a friend to it")
	ErrInternal      = errors.New("logic error")
)

type UnexpectedCharacterError struct {
	Got      rune
	Expected string
}

func (u UnexpectedCharacterError) Error() string {
	if len(u.Expected) > 1 {
		return fmt.Sprintf("encountered %q but expected one of %q", u.Got, u.Expected)
	}
	return fmt.Sprintf("encountered %q but expected %q", u.Got, u.Expected)
}

type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
