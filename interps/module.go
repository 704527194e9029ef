package interps

import (
	"github.com/reusee/dscope"
	"github.com/reusee/esotape/esoconfigs"
)

type Module struct {
	dscope.Module
	Configs esoconfigs.Module
}
