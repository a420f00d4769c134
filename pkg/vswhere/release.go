package vswhere

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// latestReleaseEndpoint serves metadata for the newest published
// vswhere release. Var so tests can point it at a stub server.
var latestReleaseEndpoint = "https://api.github.com/repos/microsoft/vswhere/releases/latest"

type githubReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type githubRelease struct {
	TagName string               `json:"tag_name"`
	Assets  []githubReleaseAsset `json:"assets"`
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// downloadURL returns where vswhere.exe should be fetched from: the
// configured mirror when set, otherwise the matching asset of the
// latest published release.
func (c *Client) downloadURL(ctx context.Context) (string, error) {
	if c.mirrorURL != "" {
		return c.mirrorURL, nil
	}
	return c.latestReleaseAssetURL(ctx)
}

func (c *Client) latestReleaseAssetURL(ctx context.Context) (string, error) {
	endpoint := latestReleaseEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &ResolutionError{URL: endpoint, Message: "create release request", Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &ResolutionError{URL: endpoint, Message: "query release feed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ResolutionError{URL: endpoint, Message: fmt.Sprintf("release query failed: %s", resp.Status)}
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", &ResolutionError{URL: endpoint, Message: "decode release metadata", Err: err}
	}

	for _, asset := range release.Assets {
		if asset.Name == ExecutableName {
			return asset.BrowserDownloadURL, nil
		}
	}
	return "", &ResolutionError{URL: endpoint, Message: "could not locate a release asset named " + ExecutableName}
}

// Download fetches a fresh copy of vswhere.exe into the cache,
// overwriting any existing download, and returns the cached path.
// Installed copies and overrides are ignored; use Resolve for normal
// lookups.
func (c *Client) Download(ctx context.Context) (string, error) {
	dest, err := c.cachedExecutablePath()
	if err != nil {
		return "", &ResolutionError{Message: "determine cache path", Err: err}
	}
	if err := c.download(ctx, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// download streams vswhere.exe to dest, replacing any partial prior
// content. The body is written to a temp file first so a failed
// transfer never leaves a truncated executable behind.
func (c *Client) download(ctx context.Context, dest string) error {
	srcURL, err := c.downloadURL(ctx)
	if err != nil {
		return err
	}

	c.logf("downloading %s from %s", ExecutableName, srcURL)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return &ResolutionError{URL: srcURL, Message: "prepare cache directory", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return &ResolutionError{URL: srcURL, Message: "create download request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &ResolutionError{URL: srcURL, Message: "download", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ResolutionError{URL: srcURL, Message: fmt.Sprintf("download failed: %s", resp.Status)}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ExecutableName+".tmp-*")
	if err != nil {
		return &ResolutionError{URL: srcURL, Message: "create temp file", Err: err}
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return &ResolutionError{URL: srcURL, Message: "write download", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ResolutionError{URL: srcURL, Message: "close temp file", Err: err}
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return &ResolutionError{URL: srcURL, Message: "finalize download", Err: err}
	}

	c.logf("cached %s at %s", ExecutableName, dest)
	return nil
}
