package esoconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/esotape/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
