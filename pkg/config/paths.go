package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings live in one directory per project or user:
//
//	./.chatlist/settings.yaml          project-local, searched first
//	$XDG_CONFIG_HOME/chatlist/settings.yaml
//
// Files the tool writes, such as the log, go next to the settings file that
// was loaded.
const (
	LocalSettingsDir = ".chatlist"
	SettingsName     = "settings"
)

// SearchPaths lists the directories Load looks for settings.yaml in, in order.
func SearchPaths() ([]string, error) {
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return []string{
		filepath.Join(".", LocalSettingsDir),
		filepath.Join(xdgConfigHome, "chatlist"),
	}, nil
}

// BaseSettingsDir is the directory of the loaded settings file. Without one
// it falls back to the project-local directory. config.path pins it.
func BaseSettingsDir() string {
	if dir := viper.GetString("config.path"); dir != "" {
		return dir
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return filepath.Dir(used)
	}
	return LocalSettingsDir
}

// BuildSettingsPath places a file name in the settings directory.
func BuildSettingsPath(name string) string {
	return filepath.Join(BaseSettingsDir(), name)
}

// ResolveSettingsPath keeps absolute paths and moves relative ones into the
// settings directory, keeping only their file name.
func ResolveSettingsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return BuildSettingsPath(filepath.Base(path))
}
