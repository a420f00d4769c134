package cli

import (
	"github.com/spf13/cobra"
)

func newLatestCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the newest installed Visual Studio instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLatest(cmd, flags)
		},
	}
	flags.bindPersistent(cmd)

	cmd.AddCommand(newLatestPathCmd(flags))
	cmd.AddCommand(newLatestVersionCmd(flags))
	cmd.AddCommand(newLatestMajorCmd(flags))

	return cmd
}

func runLatest(cmd *cobra.Command, flags *queryFlags) error {
	client, closer, err := newClient()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	inst, err := client.GetLatest(cmd.Context(), flags.options(cmd))
	if err != nil {
		return err
	}
	if inst == nil {
		cmd.Println("(no installations found)")
		return nil
	}
	return printJSON(cmd, inst)
}

func newLatestPathCmd(flags *queryFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the installation path of the newest instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closer, err := newClient()
			if err != nil {
				return err
			}
			defer closeQuietly(closer)

			path, err := client.GetLatestPath(cmd.Context(), flags.options(cmd))
			if err != nil {
				return err
			}
			if path != "" {
				cmd.Println(path)
			}
			return nil
		},
	}
}

func newLatestVersionCmd(flags *queryFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the newest instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closer, err := newClient()
			if err != nil {
				return err
			}
			defer closeQuietly(closer)

			version, err := client.GetLatestVersion(cmd.Context(), flags.options(cmd))
			if err != nil {
				return err
			}
			if version != "" {
				cmd.Println(version)
			}
			return nil
		},
	}
}

func newLatestMajorCmd(flags *queryFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "major",
		Short: "Print the major version of the newest instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closer, err := newClient()
			if err != nil {
				return err
			}
			defer closeQuietly(closer)

			major, err := client.GetLatestMajorVersion(cmd.Context(), flags.options(cmd))
			if err != nil {
				return err
			}
			cmd.Println(major)
			return nil
		},
	}
}
