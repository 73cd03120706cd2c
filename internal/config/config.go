// Package config resolves where the catalog file lives and loads the
// global configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvLibrary is the environment variable naming the catalog file. A
// .env file in the working directory is honored for it (loaded by the
// CLI at startup, never overriding the real environment).
const EnvLibrary = "XCL_LIBRARY"

// DefaultLibraryFile is the catalog filename used when nothing else
// is configured.
const DefaultLibraryFile = "xerox_data.json"

// Library source labels reported by ResolveLibrary.
const (
	SourceFlag        = "flag"
	SourceEnvironment = "environment"
	SourceGlobal      = "global config"
	SourceDefault     = "default"
)

// ResolveLibrary picks the catalog path, first hit wins: the
// --library flag value, $XCL_LIBRARY, library_path from the global
// config, then DefaultLibraryFile in the working directory. The
// returned source names which rule fired, for `xcl config`.
func ResolveLibrary(flagValue string) (path, source string, err error) {
	if flagValue != "" {
		return ExpandTilde(flagValue), SourceFlag, nil
	}

	if env := os.Getenv(EnvLibrary); env != "" {
		return ExpandTilde(env), SourceEnvironment, nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", "", err
	}
	if cfg.LibraryPath != "" {
		return cfg.LibraryPath, SourceGlobal, nil
	}

	return DefaultLibraryFile, SourceDefault, nil
}

// ExpandTilde expands a leading ~/ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
