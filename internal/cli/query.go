package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vslocate/pkg/vswhere"
)

// queryFlags binds the vswhere selection options onto a command.
type queryFlags struct {
	find         string
	all          bool
	latest       bool
	legacy       bool
	path         string
	prerelease   bool
	products     []string
	requires     []string
	requiresAny  bool
	sortOutput   bool
	versionRange string
}

func (f *queryFlags) bind(cmd *cobra.Command) {
	f.bindFlagSet(cmd.Flags())
}

// bindPersistent registers the flags so subcommands inherit them.
func (f *queryFlags) bindPersistent(cmd *cobra.Command) {
	f.bindFlagSet(cmd.PersistentFlags())
}

func (f *queryFlags) bindFlagSet(flags *pflag.FlagSet) {
	flags.StringVar(&f.find, "find", "", "Return file paths matching this glob under each installation")
	flags.BoolVar(&f.all, "all", false, "Find all instances, even incomplete ones")
	flags.BoolVar(&f.latest, "latest", false, "Return only the newest and last installed instance")
	flags.BoolVar(&f.legacy, "legacy", false, "Also search Visual Studio 2015 and older")
	flags.StringVar(&f.path, "path", "", "Get the instance owning the given file path")
	flags.BoolVar(&f.prerelease, "prerelease", false, "Also search prereleases")
	flags.StringSliceVar(&f.products, "products", nil, "Product IDs to find")
	flags.StringSliceVar(&f.requires, "requires", nil, "Workload or component IDs instances must have")
	flags.BoolVar(&f.requiresAny, "requires-any", false, "Match instances with any of the required IDs")
	flags.BoolVar(&f.sortOutput, "sort", false, "Sort instances from newest to oldest")
	flags.StringVar(&f.versionRange, "version", "", "Version range to match, e.g. [15.0,16.0)")
}

// options converts the bound flags into query options. Legacy is only
// populated when the flag was given, preserving its unset state for the
// latest-query defaulting.
func (f *queryFlags) options(cmd *cobra.Command) vswhere.Options {
	opts := vswhere.Options{
		Find:        f.find,
		All:         f.all,
		Latest:      f.latest,
		Path:        f.path,
		Prerelease:  f.prerelease,
		Products:    f.products,
		Requires:    f.requires,
		RequiresAny: f.requiresAny,
		Sort:        f.sortOutput,
		Version:     f.versionRange,
	}
	if cmd.Flags().Changed("legacy") {
		opts.Legacy = vswhere.Bool(f.legacy)
	}
	return opts
}

// instanceString extracts a string field from a free-form record.
func instanceString(inst vswhere.Instance, key string) string {
	if value, ok := inst[key].(string); ok {
		return value
	}
	return ""
}
