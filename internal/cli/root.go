package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vslocate/internal/config"
	"vslocate/internal/logx"
	"vslocate/pkg/vswhere"
)

var (
	exePath    string
	mirrorURL  string
	cacheDir   string
	configPath string
	verbose    bool
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vslocate",
		Short: "Locate Visual Studio installations via vswhere",
	}

	cmd.PersistentFlags().StringVar(&exePath, "exe", "", "Path to a vswhere.exe to use instead of resolving one")
	cmd.PersistentFlags().StringVar(&mirrorURL, "mirror", "", "URL to download vswhere.exe from instead of the GitHub release feed")
	cmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Directory for downloaded executables")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a settings file")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log resolution and invocation details to the cache log")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newFindCmd())
	cmd.AddCommand(newLatestCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newPickCmd())

	return cmd
}

// newClient builds a vswhere client from the settings file and flags.
// Flags win over the file. The returned closer is non-nil when verbose
// logging opened a log file.
func newClient() (*vswhere.Client, io.Closer, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, nil, err
	}

	client := vswhere.New()
	cfg.Apply(client)

	if exePath != "" {
		client.SetExecutablePath(exePath)
	}
	if mirrorURL != "" {
		client.SetDownloadMirror(mirrorURL)
	}
	if cacheDir != "" {
		client.SetCacheDir(cacheDir)
	}

	var closer io.Closer
	if verbose {
		dir := cacheDir
		if dir == "" {
			dir = cfg.CacheDir
		}
		if dir == "" {
			dir, err = vswhere.DefaultCacheDir()
			if err != nil {
				return nil, nil, err
			}
		}
		logger, file, err := logx.New(dir)
		if err != nil {
			return nil, nil, err
		}
		client.Logger = logger
		closer = file
	}

	return client, closer, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
