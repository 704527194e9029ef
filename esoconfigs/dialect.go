package esoconfigs

import (
	"github.com/reusee/esotape/cmds"
	"github.com/reusee/esotape/configs"
	"github.com/reusee/esotape/lexers"
)

type DefaultDialect lexers.Dialect

func (d DefaultDialect) String() string {
	return lexers.Dialect(d).String()
}

var dialectFlag *lexers.Dialect

func setDialect(d lexers.Dialect) {
	dialectFlag = &d
}

func init() {
	for _, d := range lexers.Dialects {
		cmds.Define("-"+d.String(), cmds.Func(func() {
			setDialect(d)
		}).Desc("read the program as "+d.String()).Alias("--"+d.String()))
	}
	cmds.Define("-dialect", cmds.Func(func(name string) error {
		d, err := lexers.ParseDialect(name)
		if err != nil {
			return err
		}
		setDialect(d)
		return nil
	}).Desc("read the program as the named dialect"))
}

func (Module) DefaultDialect(
	loader configs.Loader,
) DefaultDialect {
	// flag
	if dialectFlag != nil {
		return DefaultDialect(*dialectFlag)
	}

	// config
	if name := configs.First[string](loader, "dialect"); name != "" {
		d, err := lexers.ParseDialect(name)
		if err != nil {
			// the schema admits only known dialects
			panic(err)
		}
		return DefaultDialect(d)
	}

	return DefaultDialect(lexers.Brainfuck)
}
