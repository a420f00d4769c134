package vswhere

import (
	"context"
	"encoding/json"
	"strings"
)

// Instance is one discovered installation. Record shape is whatever
// vswhere emitted; no fields are interpreted here.
type Instance map[string]any

// Result is the decoded output of one vswhere invocation. Exactly one
// of Instances and Properties is populated: Properties when the
// argument list requested a single property, Instances otherwise.
type Result struct {
	Instances  []Instance
	Properties []string

	// PropertyQuery records which decode path applied.
	PropertyQuery bool
}

// Execute runs vswhere with the given arguments and decodes its stdout.
// A "-property" token in args selects line-per-instance output; any
// other query is forced to JSON with "-format json". "-utf8" is always
// prepended. A non-zero exit yields an InvocationError and no result.
func (c *Client) Execute(ctx context.Context, args []string) (Result, error) {
	isProperty := containsToken(args, "-property")

	exe, err := c.Resolve(ctx)
	if err != nil {
		return Result{}, err
	}

	full := append([]string{"-utf8"}, args...)
	if !isProperty {
		full = append(full, "-format", "json")
	}

	c.logf("exec %s %s", exe, strings.Join(full, " "))

	runner := c.Runner
	if runner == nil {
		runner = CmdRunner{}
	}
	res, err := runner.Run(ctx, exe, full)
	if err != nil {
		return Result{}, err
	}
	if res.ExitCode != 0 {
		return Result{}, &InvocationError{
			ExitCode: res.ExitCode,
			Output:   string(res.Stdout) + string(res.Stderr),
		}
	}

	output := string(res.Stdout)

	if isProperty {
		return Result{Properties: splitLines(output), PropertyQuery: true}, nil
	}

	var instances []Instance
	if err := json.Unmarshal([]byte(output), &instances); err != nil {
		return Result{}, &DecodeError{Err: err}
	}
	return Result{Instances: instances}, nil
}

// Find runs the query described by opts and returns full instance
// records. opts.Property is ignored so the JSON decode path always
// applies.
func (c *Client) Find(ctx context.Context, opts Options) ([]Instance, error) {
	opts.Property = ""
	res, err := c.Execute(ctx, opts.Args())
	if err != nil {
		return nil, err
	}
	return res.Instances, nil
}

// FindProperty runs the query described by opts and returns the named
// property, one value per matching instance in emission order.
func (c *Client) FindProperty(ctx context.Context, opts Options, property string) ([]string, error) {
	opts.Property = property
	res, err := c.Execute(ctx, opts.Args())
	if err != nil {
		return nil, err
	}
	return res.Properties, nil
}

func containsToken(args []string, token string) bool {
	for _, arg := range args {
		if arg == token {
			return true
		}
	}
	return false
}

// splitLines splits process output into lines, dropping the empty
// trailing line a final newline produces.
func splitLines(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}
