package configs

import (
	"flag"
	"os"

	"github.com/hilthontt/sovereign/internal/infrastructure/env"
)

var candidates = []string{
	"./config.yaml",
	"./config.yml",
	"./tmp/config.yaml",
	"/etc/sovereign/config.yaml",
	"/app/config.yaml", // common in Docker
}

// DetermineConfigPath resolves the config file from the --config flag, the
// SOVEREIGN_CONFIG variable or the first existing candidate. An empty result
// means "defaults and environment only".
func DetermineConfigPath(fs *flag.FlagSet, args []string) (string, error) {
	var configPath string

	fs.StringVar(&configPath, "config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if configPath == "" {
		configPath = env.GetString("SOVEREIGN_CONFIG", "")
	}

	if configPath == "" {
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath, nil
}
