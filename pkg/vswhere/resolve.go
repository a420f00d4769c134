package vswhere

import (
	"context"
	"os"
	"path/filepath"
)

// programFilesX86Env names the 32-bit program files directory on
// Windows. When it is unset the installed-copy tier is skipped.
const programFilesX86Env = "ProgramFiles(x86)"

// Resolve returns the path to vswhere.exe, downloading it if no copy
// can be found. Candidates are checked in order: the explicit override,
// the copy installed with the Visual Studio Installer, a previously
// downloaded copy, and finally a fresh download into the cache.
func (c *Client) Resolve(ctx context.Context) (string, error) {
	if c.execPath != "" && fileExists(c.execPath) {
		return c.execPath, nil
	}

	if installed := installedExecutablePath(); installed != "" && fileExists(installed) {
		return installed, nil
	}

	cached, err := c.cachedExecutablePath()
	if err != nil {
		return "", &ResolutionError{Message: "determine cache path", Err: err}
	}
	if fileExists(cached) {
		return cached, nil
	}

	if err := c.download(ctx, cached); err != nil {
		return "", err
	}
	return cached, nil
}

// installedExecutablePath returns the conventional location of the
// vswhere copy shipped with the Visual Studio Installer, or "" when the
// platform gives no 32-bit program files directory.
func installedExecutablePath() string {
	programFiles := os.Getenv(programFilesX86Env)
	if programFiles == "" {
		return ""
	}
	return filepath.Join(programFiles, "Microsoft Visual Studio", "Installer", ExecutableName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
