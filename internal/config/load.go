package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

//go:embed *.json
var configFS embed.FS

const (
	defaultConfigFile = "default.json"
	defaultEnv        = "local"
	envVarPrefix      = "RELAY"
)

type LoadOpts struct {
	env string
}

// WithEnv sets the env specific config to merge on top of defaults.
// If empty, APP_ENV env variable is used, falling back to "local".
func (o *LoadOpts) WithEnv(value string) *LoadOpts {
	o.env = value
	return o
}

func NewLoadOpts() *LoadOpts {
	return &LoadOpts{}
}

func mergeEmbeddedConfig(cfg *viper.Viper, fileName string) error {
	data, err := configFS.ReadFile(fileName)
	if err != nil {
		return err
	}
	if err = cfg.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", fileName, err)
	}
	return nil
}

// Load reads the embedded default config and merges env specific config on top of it.
// Values can further be overridden with env variables, e.g. RELAY_TCPSERVER_PORT.
func Load(opts *LoadOpts) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigType("json")

	if err := mergeEmbeddedConfig(cfg, defaultConfigFile); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	env := opts.env
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	if env == "" {
		env = defaultEnv
	}

	if err := mergeEmbeddedConfig(cfg, env+".json"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no config found for env %q: %w", env, err)
		}
		return nil, fmt.Errorf("failed to load %s config: %w", env, err)
	}

	cfg.SetEnvPrefix(envVarPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	return cfg, nil
}
