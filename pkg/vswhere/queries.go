package vswhere

import (
	"context"
	"strconv"
	"strings"
)

// FindFirst returns the first matching instance, or nil when the query
// matched nothing.
func (c *Client) FindFirst(ctx context.Context, opts Options) (Instance, error) {
	instances, err := c.Find(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, nil
	}
	return instances[0], nil
}

// applyLatestDefaults forces Latest and, when the caller left Legacy
// unset, enables legacy search unless Products or Requires narrow the
// query. Legacy detection is coarser than product and requirement
// filtering, so the tool rejects the combination.
func applyLatestDefaults(opts Options) Options {
	opts.Latest = true
	if opts.Legacy == nil {
		legacy := len(opts.Products) == 0 && len(opts.Requires) == 0
		opts.Legacy = &legacy
	}
	return opts
}

// GetLatest returns the newest installed instance, or nil when none
// exist. Legacy installations are included unless opts selects
// products or requirements, or sets Legacy explicitly.
func (c *Client) GetLatest(ctx context.Context, opts Options) (Instance, error) {
	return c.FindFirst(ctx, applyLatestDefaults(opts))
}

// GetLatestPath returns the installation path of the newest installed
// instance, or "" when none exist.
func (c *Client) GetLatestPath(ctx context.Context, opts Options) (string, error) {
	return c.latestProperty(ctx, opts, PropertyInstallationPath)
}

// GetLatestVersion returns the version of the newest installed
// instance, or "" when none exist. Visual Studio 2017 and newer report
// a full version such as "15.8.28010.2003"; legacy installations
// report only major.minor.
func (c *Client) GetLatestVersion(ctx context.Context, opts Options) (string, error) {
	return c.latestProperty(ctx, opts, PropertyInstallationVersion)
}

func (c *Client) latestProperty(ctx context.Context, opts Options, property string) (string, error) {
	values, err := c.FindProperty(ctx, applyLatestDefaults(opts), property)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}
	return values[0], nil
}

// GetLatestMajorVersion returns the major version of the newest
// installed instance as an int, or 0 when no installation is found or
// the version does not start with a number.
func (c *Client) GetLatestMajorVersion(ctx context.Context, opts Options) (int, error) {
	version, err := c.GetLatestVersion(ctx, opts)
	if err != nil {
		return 0, err
	}
	major, _, _ := strings.Cut(version, ".")
	value, err := strconv.Atoi(major)
	if err != nil {
		return 0, nil
	}
	return value, nil
}
