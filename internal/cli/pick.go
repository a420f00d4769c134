package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"vslocate/internal/tui"
)

func newPickCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose an installation and print its path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPick(cmd, flags)
		},
	}
	flags.bind(cmd)

	return cmd
}

func runPick(cmd *cobra.Command, flags *queryFlags) error {
	client, closer, err := newClient()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	instances, err := client.Find(cmd.Context(), flags.options(cmd))
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		return errors.New("no installations found")
	}

	items := make([]tui.PickItem, 0, len(instances))
	for _, inst := range instances {
		name := instanceString(inst, "displayName")
		if name == "" {
			name = instanceString(inst, "instanceId")
		}
		items = append(items, tui.PickItem{
			Name:    name,
			Version: instanceString(inst, "installationVersion"),
			Path:    instanceString(inst, "installationPath"),
		})
	}

	// The picker draws on stderr so the chosen path stays clean on
	// stdout for shell substitution.
	item, ok, err := tui.RunPicker(cmd.ErrOrStderr(), "Select a Visual Studio installation", items)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("selection cancelled")
	}

	cmd.Println(item.Path)
	return nil
}
