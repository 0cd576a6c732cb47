// Package config reads portreview settings from the environment.
//
// Every key is read from PORTREVIEW_<KEY>, e.g. PORTREVIEW_LOG=debug.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PORTREVIEW"

const (
	keyLog         = "log"
	keyScratchHome = "scratch_home"
	keyVersion     = "version"
)

// DefaultLogLevel applies when PORTREVIEW_LOG is unset.
const DefaultLogLevel = "info"

// Config holds settings resolved at startup.
type Config struct {
	LogLevel    string
	ScratchHome string
	Version     string
}

// DefaultScratchHome is the isolated home used for clones unless overridden.
func DefaultScratchHome() string {
	return filepath.Join(os.TempDir(), "portreview-home")
}

// Load resolves the configuration from the process environment.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLog, DefaultLogLevel)
	v.SetDefault(keyScratchHome, DefaultScratchHome())
	v.SetDefault(keyVersion, "0.0.0-dev")

	return Config{
		LogLevel:    strings.TrimSpace(v.GetString(keyLog)),
		ScratchHome: v.GetString(keyScratchHome),
		Version:     v.GetString(keyVersion),
	}
}
