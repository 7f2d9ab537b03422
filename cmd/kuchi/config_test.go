package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) lookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestConfigFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.engine")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "kuchi.toml")
	content := "font = \"ipaexg.ttf\"\nbackend = \"log\"\nscale = 1.5\ntrace = \"Debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfigFile(path)
	assert.NoError(t, err)
	assert.Equal(t, fileConfig{Font: "ipaexg.ttf", Backend: "log", Scale: 1.5, Trace: "Debug"}, cfg)
	//
	cfg, err = loadConfigFile(filepath.Join(dir, "none.toml"))
	assert.NoError(t, err)
	assert.Equal(t, fileConfig{}, cfg)
	//
	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("scale = = 3"), 0644)
	_, err = loadConfigFile(bad)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestEnvironmentWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.engine")
	defer teardown()
	//
	file := fileConfig{Font: "ipag.ttf", Backend: "log", Scale: 3}
	conf := configure(file, envOf(map[string]string{
		"KUCHI_FONT":  "gofont",
		"KUCHI_TRACE": "Info",
	}))
	assert.Equal(t, "gofont", conf.GetString("font"))
	assert.Equal(t, "log", conf.GetString("backend"))
	assert.Equal(t, "3", conf.GetString("scale"))
	assert.Equal(t, "Info", conf.GetString("trace.kuchi.engine"))
	//
	conf = configure(fileConfig{}, envOf(nil))
	assert.False(t, conf.IsSet("font"))
	assert.Equal(t, "Error", conf.GetString("trace.kuchi.core"))
}

func TestConfigFilePath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.engine")
	defer teardown()
	//
	assert.Equal(t, "kuchi.toml", configFilePath(envOf(nil)))
	assert.Equal(t, "/etc/kuchi.toml", configFilePath(envOf(map[string]string{"KUCHI_CONFIG": "/etc/kuchi.toml"})))
}
