// Package vswhere locates Visual Studio installations through
// Microsoft's vswhere tool. If Visual Studio 15.2 or later installed
// vswhere alongside the Visual Studio Installer, that copy is used;
// otherwise the latest release is downloaded from GitHub the first time
// a query runs and cached for later use.
package vswhere

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	// ExecutableName is the release asset and cache file name.
	ExecutableName = "vswhere.exe"

	userAgent = "vslocate/1.0"
)

// Logger receives diagnostic messages from the client. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Client resolves the vswhere executable and runs queries against it.
// The zero value is not usable; construct with New. Clients are not
// safe for concurrent mutation; set overrides before issuing queries.
type Client struct {
	execPath  string
	mirrorURL string
	cacheDir  string

	HTTPClient *http.Client
	Runner     Runner
	Logger     Logger
}

// New returns a client with the default cache directory, HTTP client,
// and process runner.
func New() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Runner:     CmdRunner{},
	}
}

// SetExecutablePath overrides the vswhere location. The override is
// checked first on every subsequent resolution; it wins over any copy
// installed with Visual Studio.
func (c *Client) SetExecutablePath(path string) {
	c.execPath = path
}

// SetDownloadMirror sets the URL vswhere.exe is downloaded from when no
// installed or cached copy exists, replacing the release-feed lookup.
func (c *Client) SetDownloadMirror(url string) {
	c.mirrorURL = url
}

// SetCacheDir overrides where downloaded copies are stored. Empty
// reverts to DefaultCacheDir.
func (c *Client) SetCacheDir(dir string) {
	c.cacheDir = dir
}

func (c *Client) logf(format string, v ...any) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.Printf(format, v...)
}

// DefaultCacheDir returns the per-user directory for downloaded
// executables and logs. VSLOCATE_CACHE_DIR overrides it.
func DefaultCacheDir() (string, error) {
	if override, ok := os.LookupEnv("VSLOCATE_CACHE_DIR"); ok && override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve VSLOCATE_CACHE_DIR: %w", err)
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "vslocate"), nil
		}
		return filepath.Join(home, "AppData", "Local", "vslocate"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "vslocate"), nil
	default:
		return filepath.Join(home, ".cache", "vslocate"), nil
	}
}

func (c *Client) resolveCacheDir() (string, error) {
	if c.cacheDir != "" {
		return c.cacheDir, nil
	}
	return DefaultCacheDir()
}

// cachedExecutablePath is where a downloaded vswhere.exe lives.
func (c *Client) cachedExecutablePath() (string, error) {
	dir, err := c.resolveCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ExecutableName), nil
}
