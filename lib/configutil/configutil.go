// Package configutil reads json5 config files with optional
// machine-local overrides.
package configutil

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(path string) (base, ext string) {
	ext = filepath.Ext(path)
	return strings.TrimSuffix(path, ext), ext
}

func readInto[T any](path string, out *T) (found bool, err error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReadConfig reads the config file at the given path, then merges
// "<path>.local.<ext>" over it if that file exists (the local file wins
// on conflicting keys). It returns os.ErrNotExist when neither file is
// present so callers can decide to fall back to defaults.
func ReadConfig[T any](path string) (T, error) {
	var base T
	baseFound, err := readInto(path, &base)
	if err != nil {
		return base, err
	}

	noExt, ext := splitExt(path)
	localPath := noExt + ".local" + ext

	var local T
	localFound, err := readInto(localPath, &local)
	if err != nil {
		return base, err
	}

	if !baseFound && !localFound {
		return base, os.ErrNotExist
	}
	if localFound {
		err = mergo.Merge(&base, local, mergo.WithOverride)
		if err != nil {
			return base, err
		}
		slog.Debug("merged local config override", "path", localPath)
	}
	return base, nil
}

// ReadRecursively behaves like ReadConfig but walks up from the current
// working directory toward the filesystem root until it finds the file.
// This lets binaries run from nested directories (tests in particular)
// while the config lives at the repository root.
func ReadRecursively[T any](name string) (T, error) {
	dir, err := os.Getwd()
	if err != nil {
		var zero T
		return zero, err
	}
	for {
		out, err := ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return out, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return out, os.ErrNotExist
		}
		dir = parent
	}
}
