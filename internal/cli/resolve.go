package cli

import (
	"os"

	"github.com/spf13/cobra"

	"vslocate/internal/tui"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the path to vswhere.exe, downloading it if needed",
		RunE:  runResolve,
	}
}

func runResolve(cmd *cobra.Command, _ []string) error {
	client, closer, err := newClient()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	var spinner *tui.Spinner
	if !outputJSON && isTerminal(cmd.ErrOrStderr()) {
		spinner = tui.NewSpinner(cmd.ErrOrStderr(), "resolving vswhere")
	}

	path, err := client.Resolve(cmd.Context())
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

func isTerminal(w any) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
