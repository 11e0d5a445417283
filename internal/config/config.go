// Package config resolves where the Things database lives and how the
// tool should log. The result is a plain struct built once per invocation
// and handed to the query layer; nothing reads the environment after that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvVar overrides the database location, matching the original tool.
const EnvVar = "THINGSDB"

// Viper keys. The --db flag is bound to KeyDB by the CLI, so precedence is
// flag > environment > config file > default.
const (
	KeyDB       = "db"
	KeyTraceLog = "trace_log"
)

// Config carries everything an invocation needs. It is immutable after Load.
type Config struct {
	// DBPath is the Things database file.
	DBPath string

	// TraceLog, when set, is a file that receives compiled-query traces
	// with size-based rotation. Empty disables file tracing.
	TraceLog string
}

// DefaultDBPath is the fixed per-user location Things.app writes to.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home,
		"Library", "Group Containers",
		"JLMPQHK86H.com.culturedcode.ThingsMac",
		"Things Database.thingsdatabase", "main.sqlite")
}

// New returns a viper instance with the defaults, environment binding, and
// config file search paths installed. The CLI binds its flags onto it
// before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeyTraceLog, "")
	_ = v.BindEnv(KeyDB, EnvVar)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "things"))
	}
	return v
}

// Load reads the optional config file and materializes the Config.
// A missing config file is fine; a malformed one is not.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	return Config{
		DBPath:   v.GetString(KeyDB),
		TraceLog: v.GetString(KeyTraceLog),
	}, nil
}
