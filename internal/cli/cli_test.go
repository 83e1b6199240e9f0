package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// captureStdout redirects status output for the duration of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	captureStdout(t)
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "speech.txt", "b a b c a b")

	if _, err := runCLI(t, "render", input, "--no-cache", "-f", "svg,json", "-o", filepath.Join(dir, "out")); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "out.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("out.svg is not an SVG: %.40s", svg)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := render.ParseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Tags) != 3 {
		t.Errorf("document has %d tags, want 3", len(doc.Tags))
	}
}

func TestRenderSingleOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "speech.txt", "hello world")
	out := filepath.Join(dir, "cloud.svg")

	if _, err := runCLI(t, "render", input, "--no-cache", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected %s: %v", out, err)
	}
}

func TestRenderConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "speech.txt", "go go gopher")
	config := writeFile(t, dir, "cloud.toml", "formats = [\"json\"]\nmain_color = \"#f00\"\nbackground = \"#222\"\n")

	_, err := runCLI(t, "--config", config, "render", input, "--no-cache", "--color", "#00f", "-o", filepath.Join(dir, "cloud"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cloud.json"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := render.ParseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Background != "#222222" {
		t.Errorf("background = %q, want the config value #222222", doc.Background)
	}
	if doc.Tags[0].Color != "#0000ff" {
		t.Errorf("color = %q, want the flag value #0000ff", doc.Tags[0].Color)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "speech.txt", "words")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing input", []string{"render", filepath.Join(dir, "nope.txt"), "--no-cache"}, errors.ErrCodeFileNotFound},
		{"missing config", []string{"--config", filepath.Join(dir, "nope.toml"), "render", input}, errors.ErrCodeFileNotFound},
		{"bad layouter", []string{"render", input, "--no-cache", "--layouter", "grid"}, errors.ErrCodeInvalidConfig},
		{"bad equation", []string{"render", input, "--no-cache", "--layouter", "shaped", "--radius", "angle ** 2"}, errors.ErrCodeInvalidEquation},
		{"bad format", []string{"render", input, "--no-cache", "-f", "gif"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLayoutCommandStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "speech.txt", "b a b c a b")

	out, err := runCLI(t, "layout", input, "--no-cache", "-o", "-", "--center-x", "100")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := pipeline.UnmarshalLayout([]byte(out))
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if len(l.Tags) != 3 || l.Center.X != 100 {
		t.Errorf("layout = %+v", l)
	}
}

func TestLayoutCommandDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "speech.txt", "alpha beta")

	if _, err := runCLI(t, "layout", input, "--no-cache"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "speech.layout.json")); err != nil {
		t.Errorf("expected speech.layout.json: %v", err)
	}
}

func TestCachePath(t *testing.T) {
	want, err := cache.DefaultDir()
	if err != nil {
		t.Skipf("no cache dir: %v", err)
	}
	out, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCompletion(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tagcloud") {
		t.Error("bash completion should mention tagcloud")
	}
	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should fail")
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "talks/speech.txt", "talks/speech"},
		{"", "-", "cloud"},
		{"out/cloud.svg", "speech.txt", "out/cloud"},
		{"out/cloud.PNG", "speech.txt", "out/cloud"},
		{"out/cloud.v2", "speech.txt", "out/cloud.v2"},
		{"out/cloud", "speech.txt", "out/cloud"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOptionFlagsResolve(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := newOptionFlags(fs, true)
	if err := fs.Parse([]string{"--rays", "90", "--gradient", "-f", "png,pdf"}); err != nil {
		t.Fatal(err)
	}

	base := pipeline.Options{RayCount: 360, Layouter: "shaped", MainColor: "#123"}
	got := flags.resolve(fs, base)
	want := pipeline.Options{RayCount: 90, Layouter: "shaped", MainColor: "#123", Gradient: true, Formats: []string{"png", "pdf"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutHasNoRenderFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	newOptionFlags(fs, false)
	if fs.Lookup("format") != nil || fs.Lookup("color") != nil {
		t.Error("layout flags should not include render options")
	}
	if fs.Lookup("layouter") == nil {
		t.Error("layout flags should include --layouter")
	}
}

func TestServeRunnerScopesKeys(t *testing.T) {
	c := New(io.Discard, LogInfo)
	tests := []struct {
		prefix, want string
	}{
		{"tagcloud:", "tagcloud:layout:"},
		{"staging:", "staging:layout:"},
		{"", "layout:"},
	}
	for _, tt := range tests {
		runner, err := c.serveRunner(context.Background(), serveOptions{prefix: tt.prefix, noCache: true})
		if err != nil {
			t.Fatalf("serveRunner(%q): %v", tt.prefix, err)
		}
		if got := runner.Keyer.LayoutKey("h", cache.LayoutKeyOpts{}); !strings.HasPrefix(got, tt.want) {
			t.Errorf("prefix %q: layout key = %q, want prefix %q", tt.prefix, got, tt.want)
		}
		runner.Close()
	}
}
