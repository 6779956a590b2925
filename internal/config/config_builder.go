package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 3),
	}
}

// build merges the collected layers into one Config. Layers are merged in
// the order they were appended; mergo only fills fields the destination
// still has at their zero value, so earlier layers win.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// withDotEnv merges a .env file from the working directory into the process
// environment. Variables that are already set keep their values, so the real
// environment beats the file. A missing .env is skipped. Must run before
// withEnv so parseEnv sees the merged values.
func (b *configBuilder) withDotEnv() *configBuilder {
	_ = godotenv.Load()
	return b
}

// withEnv appends the environment layer. Every scalar field resolves to its
// environment variable or, when unset, the envDefault carried on the field
// tag, so this single layer covers both the env and default sources for
// scalars. The phase plan has no environment form and stays empty here.
func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile appends the JSON file layer. An empty path, or a path that does
// not exist, is skipped without error; open and decode failures are
// construction errors.
func (b *configBuilder) withFile(path string) *configBuilder {
	if path == "" {
		return b
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

// withDefaults appends the built-in phase plan, used when no file layer
// supplied one. Scalar defaults live on the env layer's field tags.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &Config{
		Intersection: Intersection{Phases: DefaultPhases()},
	})
	return b
}
