package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Version of the tool, overridden at link time with -X.
var Version = "0.1.0"

const envPrefix = "IMCONV"

// Settings only tune the runtime; conversion parameters never come from the environment.
type Settings struct {
	Develop  bool   `envconfig:"DEVELOP"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

var (
	once    sync.Once
	current Settings
)

// Load reads the IMCONV_* variables into a fresh Settings.
func Load() (Settings, error) {
	var s Settings
	err := envconfig.Process(envPrefix, &s)
	return s, err
}

// Current returns the settings loaded at first use.
func Current() Settings {
	once.Do(func() {
		current, _ = Load()
	})
	return current
}

// InDevelop ...
func InDevelop() bool {
	return Current().Develop
}

// LogLevel ...
func LogLevel() string {
	return Current().LogLevel
}
