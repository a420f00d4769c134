package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"vslocate/pkg/vswhere"
)

var findProperty string

func newFindCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Query installed Visual Studio instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, flags)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&findProperty, "property", "", "Return only this property, one line per instance")

	return cmd
}

func runFind(cmd *cobra.Command, flags *queryFlags) error {
	client, closer, err := newClient()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	opts := flags.options(cmd)

	if findProperty != "" {
		values, err := client.FindProperty(cmd.Context(), opts, findProperty)
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(cmd, values)
		}
		for _, value := range values {
			cmd.Println(value)
		}
		return nil
	}

	instances, err := client.Find(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(cmd, instances)
	}
	printInstanceTable(cmd, instances)
	return nil
}

func printJSON(cmd *cobra.Command, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printInstanceTable(cmd *cobra.Command, instances []vswhere.Instance) {
	if len(instances) == 0 {
		cmd.Println("(no instances found)")
		return
	}

	cmd.Printf("%-40s %-16s %s\n", "Name", "Version", "Path")
	for _, inst := range instances {
		name := instanceString(inst, "displayName")
		if name == "" {
			name = instanceString(inst, "instanceId")
		}
		cmd.Printf("%-40s %-16s %s\n",
			name,
			instanceString(inst, "installationVersion"),
			instanceString(inst, "installationPath"),
		)
	}
}
