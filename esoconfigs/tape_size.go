package esoconfigs

import (
	"github.com/reusee/esotape/cmds"
	"github.com/reusee/esotape/configs"
	"github.com/reusee/esotape/tapes"
	"github.com/reusee/esotape/vars"
)

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (TapeSize) ConfigExpr() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size", "number of tape cells")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return vars.FirstNonZero(
		TapeSize(max(*tapeSizeFlag, 0)),
		configs.Get[TapeSize](loader),
		TapeSize(tapes.DefaultSize),
	)
}
