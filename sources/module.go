package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/esotape/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}
