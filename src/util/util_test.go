package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Core struct {
		GeneLimit  int `mapstructure:"gene_limit"`
		PauseAfter int `mapstructure:"pause_after"`
	} `mapstructure:"core"`
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("log:\n  level: warn\ncore:\n  gene_limit: 10\n"), 0644))

	defaults := map[string]interface{}{
		"log.level":        "info",
		"core.gene_limit":  5000,
		"core.pause_after": 50,
	}

	var cfg testConfig
	require.NoError(t, ReadConfig(path, defaults, &cfg))
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Core.GeneLimit)
	assert.Equal(t, 50, cfg.Core.PauseAfter)
}

func TestReadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("core:\n  gene_limit: 10\n"), 0644))

	os.Setenv("CORE_PAUSE_AFTER", "7")
	defer os.Unsetenv("CORE_PAUSE_AFTER")

	var cfg testConfig
	require.NoError(t, ReadConfig(path, map[string]interface{}{"core.pause_after": 50}, &cfg))
	assert.Equal(t, 7, cfg.Core.PauseAfter)
}

func TestReadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	assert.Error(t, ReadConfig(filepath.Join(t.TempDir(), "none.yaml"), nil, &cfg))
}

func TestFlatten(t *testing.T) {
	nested := List(
		Leaf("APOE"),
		List(Leaf("MTHFR"), List(Leaf("BRCA1|BRCA2"))),
		List[string](),
		Strings([]string{"TP53", "EGFR"}),
	)

	// 字符串整体作为标量，不会被拆成字符
	assert.Equal(t, []string{"APOE", "MTHFR", "BRCA1|BRCA2", "TP53", "EGFR"}, Flatten(nested))
	assert.True(t, nested.IsList())
	assert.False(t, Leaf("x").IsList())
	assert.Empty(t, Flatten[int]())
	assert.Equal(t, []int{1, 2, 3}, Flatten(Leaf(1), List(Leaf(2), Leaf(3))))
}
