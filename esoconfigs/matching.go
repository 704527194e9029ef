package esoconfigs

import (
	"github.com/reusee/esotape/cmds"
	"github.com/reusee/esotape/configs"
	"github.com/reusee/esotape/machines"
)

type Matching machines.Matching

func (m Matching) String() string {
	return machines.Matching(m).String()
}

var matchingFlag *machines.Matching

func init() {
	cmds.Define("-nested", cmds.Func(func() {
		m := machines.NestedMatching
		matchingFlag = &m
	}).Desc("match loop markers by nesting depth"))
	cmds.Define("-linear", cmds.Func(func() {
		m := machines.LinearMatching
		matchingFlag = &m
	}).Desc("match loop markers to the nearest opposite one (default)"))
}

func (Module) Matching(
	loader configs.Loader,
) Matching {
	// flag
	if matchingFlag != nil {
		return Matching(*matchingFlag)
	}

	// config
	if name := configs.First[string](loader, "matching"); name != "" {
		m, err := machines.ParseMatching(name)
		if err != nil {
			// the schema admits only known modes
			panic(err)
		}
		return Matching(m)
	}

	return Matching(machines.LinearMatching)
}
