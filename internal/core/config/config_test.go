package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(yaml), 0o600))
	return p
}

func TestLoad_DevDefaultsSecret(t *testing.T) {
	p := writeConfig(t, `
app:
  name: timetable-api
  env: development
jwt:
  issuer: timetable-api
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, DevSecret, c.JWT.Secret)
	assert.Equal(t, 7*24*60, c.JWT.AccessTokenTTLMin)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	p := writeConfig(t, `
app:
  env: production
jwt:
  issuer: timetable-api
`)
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoad_ProductionRejectsPlaceholder(t *testing.T) {
	p := writeConfig(t, `
app:
  env: production
jwt:
  secret: default_secret
`)
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoad_ProductionWithRealSecret(t *testing.T) {
	p := writeConfig(t, `
app:
  env: production
jwt:
  secret: 9f2c1b7a-not-a-placeholder
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "9f2c1b7a-not-a-placeholder", c.JWT.Secret)
}
