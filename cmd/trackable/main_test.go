package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/trackable/internal/errors"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderFirstChild(t *testing.T) {
	req := `{
  "namespaces": [
    {"id": "ga", "props": {"eventName": "signup", "count": 3}},
    {"id": "ua", "props": {"eventName": "legacy"}}
  ],
  "children": "<button class=\"cta\">Sign up</button><p>after</p>"
}`
	out, _, err := run(t, req, "render", "-p", "ga=ga", "-p", "ua=ua-")
	require.NoError(t, err)
	assert.Equal(t,
		`<button class="cta" data-ga-count="3" data-ga-event-name="signup" data-ua-event-name="legacy">Sign up</button><p>after</p>`+"\n",
		out)
}

func TestRenderTagReplacement(t *testing.T) {
	req := `{"namespaces":[{"id":"ga","props":{"name":"x"}}],"children":"Hey there","replacement":{"tag":"span"}}`
	out, _, err := run(t, req, "render")
	require.NoError(t, err)
	assert.Equal(t, `<span data-name="x">Hey there</span>`+"\n", out)
}

func TestRenderElementReplacement(t *testing.T) {
	req := `{"namespaces":[{"id":"ga","props":{"name":"x"}}],"children":"Hey there","replacement":{"element":"<button type=\"button\">Click me</button>"}}`
	out, _, err := run(t, req, "render")
	require.NoError(t, err)
	assert.Equal(t, `<button data-name="x" type="button">Click me</button>`+"\n", out)
}

func TestRenderInvalidElementReplacement(t *testing.T) {
	req := `{"children":"<div></div>","replacement":{"element":"just text"}}`
	out, _, err := run(t, req, "render")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestRenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"namespaces":[{"id":"ga","props":{"a":"1"}}],"children":"<i>x</i>"}`), 0o644))

	out, _, err := run(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, `<i data-a="1">x</i>`+"\n", out)
}

func TestRenderWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "trackable.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"converter":"identity","prefixes":{"ga":"g"}}`), 0o644))

	req := `{"namespaces":[{"id":"ga","props":{"eventName":"x"}}],"children":"<b>y</b>"}`
	out, _, err := run(t, req, "render", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, `<b data-g-eventName="x">y</b>`+"\n", out)
}

func TestAttrs(t *testing.T) {
	req := `{"namespaces":[{"id":"a","props":{"X":"first"}},{"id":"b","props":{"X":"second","yZ":true}}]}`
	out, _, err := run(t, req, "attrs")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data-x":"second","data-y-z":true}`, out)
}

func TestNumbersKeepTheirLiteral(t *testing.T) {
	req := `{"namespaces":[{"id":"ga","props":{"value":1000000,"price":19.9,"big":12345678901234567890}}],"children":"<button>Buy</button>"}`

	out, _, err := run(t, req, "render")
	require.NoError(t, err)
	assert.Equal(t, `<button data-big="12345678901234567890" data-price="19.9" data-value="1000000">Buy</button>`+"\n", out)

	out, _, err = run(t, req, "attrs")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data-big":12345678901234567890,"data-price":19.9,"data-value":1000000}`, out)
	assert.Contains(t, out, "1000000")
	assert.NotContains(t, out, "e+")
}

func TestColorsDisabledOffTerminal(t *testing.T) {
	errors.EnableColors()
	t.Cleanup(errors.EnableColors)

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	require.NoError(t, err)
	defer f.Close()

	configureColors(f)
	out := errors.FormatError(errors.New(errors.CodeInvalidRequest))
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, errors.CodeInvalidRequest)
}

func TestMetricsDump(t *testing.T) {
	req := `{"namespaces":[{"id":"ga","props":{"a":"1"}}],"children":"<i>x</i>"}`
	_, stderr, err := run(t, req, "render", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `trackable_merges_total{namespace="ga"} 1`)
	assert.Contains(t, stderr, "trackable_render_duration_seconds_count 1")
}

func TestDebugLogging(t *testing.T) {
	req := `{"children":"<i>x</i>"}`
	_, stderr, err := run(t, req, "render", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "merged tracking attributes")
}

func TestInvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  string
	}{
		{"bad json", `{`, []string{"render"}, errors.CodeInvalidRequest},
		{"unknown field", `{"nope":1}`, []string{"render"}, errors.CodeInvalidRequest},
		{"missing id", `{"namespaces":[{"props":{}}]}`, []string{"attrs"}, errors.CodeInvalidRequest},
		{"both replacements", `{"replacement":{"tag":"a","element":"<b></b>"}}`, []string{"render"}, errors.CodeInvalidRequest},
		{"missing file", ``, []string{"render", "/does/not/exist.json"}, errors.CodeInvalidRequest},
		{"bad prefix flag", `{}`, []string{"render", "-p", "noequals"}, errors.CodeConfigInvalid},
		{"bad log level", `{}`, []string{"render", "--log-level", "loud"}, errors.CodeConfigInvalid},
		{"missing config", `{}`, []string{"render", "--config", "/does/not/exist.json"}, errors.CodeConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.New(tt.code)), "got %v", err)
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "trackable dev")
	assert.Contains(t, out, "Go version:")
}
