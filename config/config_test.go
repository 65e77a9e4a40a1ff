package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestLoad ...

env:

IMCONV_DEVELOP=true
IMCONV_LOG_LEVEL=debug
*/
func TestLoad(t *testing.T) {
	t.Setenv("IMCONV_DEVELOP", "true")
	t.Setenv("IMCONV_LOG_LEVEL", "debug")

	s, err := Load()
	assert.NoError(t, err)
	assert.True(t, s.Develop)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"IMCONV_DEVELOP", "IMCONV_LOG_LEVEL"} {
		t.Setenv(k, "") // restores the original value on cleanup
		os.Unsetenv(k)
	}

	s, err := Load()
	assert.NoError(t, err)
	assert.False(t, s.Develop)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadBadBool(t *testing.T) {
	t.Setenv("IMCONV_DEVELOP", "maybe")

	_, err := Load()
	assert.Error(t, err)
}
