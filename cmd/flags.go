package cmd

import "github.com/spf13/pflag"

type globalFlags struct {
	dataDir    string
	configPath string
	backend    string
}

var globals globalFlags

func bindGlobalFlags(fs *pflag.FlagSet, g *globalFlags) {
	fs.StringVar(&g.dataDir, "data-dir", "", "Directory for the store, config and log (default: user config dir)")
	fs.StringVar(&g.configPath, "config", "", "Config file (default: <data-dir>/config.ini)")
	fs.StringVar(&g.backend, "backend", "", "Storage backend: bolt, sqlite, file or memory")
}
