package main

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
)

var traceKeys = []string{"kuchi.core", "kuchi.input", "kuchi.engine", "kuchi.backend",
	"kuchi.font", "kuchi.resources"}

const defaultConfigFile = "kuchi.toml"

// fileConfig is the content of a configuration file.
type fileConfig struct {
	Font    string  `toml:"font"`
	Backend string  `toml:"backend"`
	Scale   float64 `toml:"scale"`
	Trace   string  `toml:"trace"`
}

type lookupEnv func(string) (string, bool)

func configFilePath(env lookupEnv) string {
	if path, ok := env("KUCHI_CONFIG"); ok && path != "" {
		return path
	}
	return defaultConfigFile
}

// loadConfigFile reads a configuration file. A missing file is not an error.
func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, core.WrapError(err, core.EINVALID, "cannot read configuration %s", path)
	}
	return cfg, nil
}

// configure merges the configuration file with the environment, the latter
// taking precedence.
func configure(file fileConfig, env lookupEnv) testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	set := func(key, value, envname string) {
		if v, ok := env(envname); ok && v != "" {
			value = v
		}
		if value != "" {
			conf[key] = value
		}
	}
	scale := ""
	if file.Scale > 0 {
		scale = strconv.FormatFloat(file.Scale, 'g', -1, 64)
	}
	set("font", file.Font, "KUCHI_FONT")
	set("backend", file.Backend, "KUCHI_BACKEND")
	set("scale", scale, "KUCHI_SCALE")
	level := file.Trace
	if v, ok := env("KUCHI_TRACE"); ok && v != "" {
		level = v
	}
	if level == "" {
		level = "Error"
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	return conf
}
