package settingsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// DefaultFileFinder looks for a settings file in the usual per-user locations.
type DefaultFileFinder struct{}

// NewDefaultFileFinder creates a new DefaultFileFinder.
func NewDefaultFileFinder() ports.FileFinder {
	return &DefaultFileFinder{}
}

// Find implements the ports.FileFinder interface.
func (d *DefaultFileFinder) Find() (string, error) {
	return findUserSettingsFile()
}

// findUserSettingsFile returns the first existing settings file from
// <UserConfigDir>/wordfreq/config.yaml and ~/.wordfreq.yaml.
func findUserSettingsFile() (string, error) {
	var potentialPaths []string
	if configDir, err := os.UserConfigDir(); err == nil {
		potentialPaths = append(potentialPaths, filepath.Join(configDir, "wordfreq", "config.yaml"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		potentialPaths = append(potentialPaths, filepath.Join(homeDir, ".wordfreq.yaml"))
	}

	for _, p := range potentialPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("no settings file found (looked in %s)", strings.Join(friendlyPaths(potentialPaths), ", "))
}

func friendlyPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = toUserFriendlyPath(p)
	}
	return out
}

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return absPath // Fallback if the home directory cannot be determined
	}

	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return filepath.Join("~", relPath)
}
