// Package fsutil locates the per-user directories ked reads and writes.
package fsutil

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"src.ked.sh/pkg/env"
)

// GetHome finds the home directory of a specified user. When given an empty
// string, it finds the home directory of the current user.
func GetHome(uname string) (string, error) {
	if uname == "" {
		// Use $HOME as override if we are looking for the home of the current
		// user.
		if home := os.Getenv(env.HOME); home != "" {
			return home, nil
		}
	}

	var u *user.User
	var err error
	if uname == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(uname)
	}
	if err != nil {
		return "", fmt.Errorf("can't resolve ~%s: %w", uname, err)
	}
	return u.HomeDir, nil
}

// ConfigDir returns the directory for ked's configuration files,
// $XDG_CONFIG_HOME/ked or ~/.config/ked.
func ConfigDir() (string, error) {
	return xdgDir(env.XDG_CONFIG_HOME, ".config")
}

// DataDir returns the directory for ked's persistent data,
// $XDG_DATA_HOME/ked or ~/.local/share/ked.
func DataDir() (string, error) {
	return xdgDir(env.XDG_DATA_HOME, filepath.Join(".local", "share"))
}

func xdgDir(envName, homeRel string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		return filepath.Join(dir, "ked"), nil
	}
	home, err := GetHome("")
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, "ked"), nil
}
