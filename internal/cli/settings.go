package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvConfig is the environment variable naming the config file.
const EnvConfig = "PICK_CONFIG"

// defaultConfigFile is the file name under the user config directory.
const defaultConfigFile = "pick.yml"

// ResolveConfigPath decides which config file to use. Precedence:
// the --config flag, then the PICK_CONFIG environment variable, then
// pick/pick.yml under the platform config directory.
func ResolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	v := viper.New()
	if err := v.BindEnv("config", EnvConfig); err != nil {
		return "", fmt.Errorf("bind %s: %w", EnvConfig, err)
	}

	dir, err := os.UserConfigDir()
	if err == nil {
		v.SetDefault("config", filepath.Join(dir, "pick", defaultConfigFile))
	}

	path := v.GetString("config")
	if path == "" {
		return "", fmt.Errorf("cannot locate a config file: set --config or %s", EnvConfig)
	}
	return path, nil
}
