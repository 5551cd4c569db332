package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qgrad-ml/qgrad/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
steps: 250
learning_rate: 0.05
tolerance: 1e-8
seed: 42
target: -0.5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Steps)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, 1e-8, cfg.Tolerance)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, -0.5, cfg.Target)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "steps: 10\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, 10, cfg.Steps)
	assert.Equal(t, def.LearningRate, cfg.LearningRate)
	assert.Equal(t, def.Target, cfg.Target)
}

func TestLoad_Invalid(t *testing.T) {
	for name, content := range map[string]string{
		"negative steps": "steps: -1\n",
		"zero lr":        "learning_rate: 0\n",
		"target range":   "target: 2.0\n",
		"bad yaml":       "steps: [not a number\n",
	} {
		_, err := config.Load(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
