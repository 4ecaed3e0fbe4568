package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// BaseConfig is the base name of the configuration files.
const BaseConfig = "config"

// DirMode is the permission mode of created directories.
const DirMode os.FileMode = 0o700

// Prefix returns the base prefix string used to construct the paths of the
// configuration and cache directories.
//
// By default, Prefix is the base name of the executable file unless it matches
// one of the following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with [Name]
//   - "^\.+" (dot-prefixed names): remove the dot prefix
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	id := os.Args[0]
	if exe, err := os.Executable(); err == nil {
		id = exe
	}

	return normalizePrefix(id)
})

func normalizePrefix(path string) string {
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	for _, sub := range []struct {
		rex *regexp.Regexp
		rep string
	}{
		{regexp.MustCompile(`^__debug_bin\d*$`), Name},
		{regexp.MustCompile(`^\.+`), ""},
	} {
		id = sub.rex.ReplaceAllString(id, sub.rep)
	}

	if id == "" {
		return Name
	}

	return id
}

// userDir returns the directory named by base, falling back to sub in the
// home directory and then to the working directory.
func userDir(base func() (string, error), sub string) string {
	dir, err := base()
	if err == nil {
		return filepath.Join(dir, Prefix())
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, sub, Prefix())
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, sub, Prefix())
	}

	return filepath.Join(".", sub, Prefix())
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the cache directory path used for transient files such
// as the REPL history and profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// ConfigPath returns the path formed by joining [ConfigDir] with elem.
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// MkdirAll creates the configuration and cache directories.
func MkdirAll() error {
	for _, dir := range []string{ConfigDir(), CacheDir()} {
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return err
		}
	}

	return nil
}
