package esoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/esotape/cmds"
	"github.com/reusee/esotape/configs"
	"github.com/reusee/esotape/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "load a config file, before the default ones")

var filenames = []string{
	"esotape.cue",
	".esotape.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Debug("config file",
				"paths", paths,
			)
		}
	}()

	// flag
	paths = append(paths, *configFlag...)

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
