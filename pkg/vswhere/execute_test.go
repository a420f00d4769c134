package vswhere

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// fakeRunner records the invocation and plays back a canned result.
type fakeRunner struct {
	result  RunResult
	err     error
	command string
	args    []string
}

func (f *fakeRunner) Run(_ context.Context, command string, args []string) (RunResult, error) {
	f.command = command
	f.args = args
	return f.result, f.err
}

// newTestClient returns a client whose executable resolves to a stub
// file and whose process output is canned.
func newTestClient(t *testing.T, runner *fakeRunner) *Client {
	t.Helper()

	exe := filepath.Join(t.TempDir(), ExecutableName)
	if err := os.WriteFile(exe, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write stub executable: %v", err)
	}

	c := New()
	c.SetExecutablePath(exe)
	c.Runner = runner
	return c
}

func TestExecuteJSONQuery(t *testing.T) {
	runner := &fakeRunner{result: RunResult{Stdout: []byte(`[{"installationPath":"C:\\VS"}]`)}}
	c := newTestClient(t, runner)

	res, err := c.Execute(context.Background(), []string{"-latest"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.PropertyQuery {
		t.Fatal("expected JSON decode path for non-property query")
	}
	if len(res.Instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(res.Instances))
	}
	if got := res.Instances[0]["installationPath"]; got != `C:\VS` {
		t.Fatalf("expected installationPath C:\\VS, got %v", got)
	}

	want := []string{"-utf8", "-latest", "-format", "json"}
	if !reflect.DeepEqual(runner.args, want) {
		t.Fatalf("argument mismatch:\n got %v\nwant %v", runner.args, want)
	}
}

func TestExecutePropertyQuery(t *testing.T) {
	runner := &fakeRunner{result: RunResult{Stdout: []byte("C:\\VS\n")}}
	c := newTestClient(t, runner)

	res, err := c.Execute(context.Background(), []string{"-latest", "-property", "installationPath"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !res.PropertyQuery {
		t.Fatal("expected property decode path")
	}
	if want := []string{`C:\VS`}; !reflect.DeepEqual(res.Properties, want) {
		t.Fatalf("expected %v, got %v", want, res.Properties)
	}
	if res.Instances != nil {
		t.Fatalf("property query must not decode instances, got %v", res.Instances)
	}

	// Property queries keep the tool's default line format.
	if containsToken(runner.args, "-format") {
		t.Fatalf("-format must not be passed for property queries, got %v", runner.args)
	}
	if runner.args[0] != "-utf8" {
		t.Fatalf("expected -utf8 first, got %v", runner.args)
	}
}

func TestExecutePropertyQueryMultipleLines(t *testing.T) {
	runner := &fakeRunner{result: RunResult{Stdout: []byte("C:\\VS2019\r\nC:\\VS2017\r\n")}}
	c := newTestClient(t, runner)

	res, err := c.Execute(context.Background(), []string{"-property", "installationPath"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{`C:\VS2019`, `C:\VS2017`}
	if !reflect.DeepEqual(res.Properties, want) {
		t.Fatalf("expected %v, got %v", want, res.Properties)
	}
}

func TestExecutePropertyQueryNoMatches(t *testing.T) {
	runner := &fakeRunner{result: RunResult{Stdout: nil}}
	c := newTestClient(t, runner)

	res, err := c.Execute(context.Background(), []string{"-property", "installationPath"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Properties) != 0 {
		t.Fatalf("expected no property values, got %v", res.Properties)
	}
}

func TestExecuteNonZeroExit(t *testing.T) {
	runner := &fakeRunner{result: RunResult{
		Stdout:   []byte(`[{"instanceId":"deadbeef"}]`),
		Stderr:   []byte("the -legacy parameter cannot be used with -products\n"),
		ExitCode: 87,
	}}
	c := newTestClient(t, runner)

	_, err := c.Execute(context.Background(), []string{"-legacy", "-products", "Community"})
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %v", err)
	}
	if invErr.ExitCode != 87 {
		t.Fatalf("expected exit code 87, got %d", invErr.ExitCode)
	}
	if invErr.Output == "" {
		t.Fatal("expected captured output in InvocationError")
	}
}

func TestExecuteBadJSON(t *testing.T) {
	cases := []struct {
		name   string
		stdout string
	}{
		{"not json", "oops"},
		{"object not array", `{"installationPath":"C:\\VS"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{result: RunResult{Stdout: []byte(tc.stdout)}}
			c := newTestClient(t, runner)

			_, err := c.Execute(context.Background(), nil)
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
		})
	}
}

func TestFindClearsProperty(t *testing.T) {
	runner := &fakeRunner{result: RunResult{Stdout: []byte(`[]`)}}
	c := newTestClient(t, runner)

	_, err := c.Find(context.Background(), Options{Property: "installationPath"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if containsToken(runner.args, "-property") {
		t.Fatalf("Find must not emit -property, got %v", runner.args)
	}
}

func TestFindPropertySetsProperty(t *testing.T) {
	runner := &fakeRunner{result: RunResult{Stdout: []byte("15.8.28010.2003\n")}}
	c := newTestClient(t, runner)

	values, err := c.FindProperty(context.Background(), Options{Latest: true}, "installationVersion")
	if err != nil {
		t.Fatalf("FindProperty: %v", err)
	}
	if want := []string{"15.8.28010.2003"}; !reflect.DeepEqual(values, want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	if !containsToken(runner.args, "-property") {
		t.Fatalf("expected -property token, got %v", runner.args)
	}
}
