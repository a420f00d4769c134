package cli

import (
	"github.com/spf13/cobra"

	"vslocate/internal/tui"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download a fresh vswhere.exe into the cache",
		RunE:  runInstall,
	}
}

func runInstall(cmd *cobra.Command, _ []string) error {
	client, closer, err := newClient()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	var spinner *tui.Spinner
	if !outputJSON && isTerminal(cmd.ErrOrStderr()) {
		spinner = tui.NewSpinner(cmd.ErrOrStderr(), "downloading vswhere")
	}

	path, err := client.Download(cmd.Context())
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(cmd, map[string]string{"path": path})
	}
	cmd.Println(path)
	return nil
}
