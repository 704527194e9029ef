package machines

import (
	"errors"
	"fmt"

	"github.com/reusee/esotape/insts"
)

var (
	ErrInputExhausted = errors.New("input is empty")
	errInvalidInst    = errors.New("invalid instruction")
)

type ExecError struct {
	PC   int
	Inst insts.Inst
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v at %d: %v", e.Inst, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
