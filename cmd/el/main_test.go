package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elerrors "github.com/vango-dev/el/internal/errors"
	"github.com/vango-dev/el/pkg/render"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	elerrors.DisableColors()
	t.Cleanup(elerrors.EnableColors)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEscape(t *testing.T) {
	out, _, err := run(t, "", "escape", `<a href="x">`, "&", "'")
	require.NoError(t, err)
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt; &amp; &#39;\n", out)
}

func TestEscapeStdinAttr(t *testing.T) {
	out, _, err := run(t, "Tom & Jerry\n", "escape", "--attr")
	require.NoError(t, err)
	assert.Equal(t, "\"Tom &amp; Jerry\"\n", out)
}

func TestComment(t *testing.T) {
	out, _, err := run(t, "", "comment", "a --> b")
	require.NoError(t, err)
	assert.Equal(t, "<!--a ==> b-->\n", out)
}

func TestCheck(t *testing.T) {
	out, stderr, err := run(t, "", "check", "tag", "div", "my-widget", "1bad")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "div")
	assert.Contains(t, out, "my-widget")
	assert.Equal(t, "E101: Invalid tag name \"1bad\"\n", stderr)

	out, stderr, err = run(t, "", "check", "attr", "data-x", "xlink:href")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, 2, strings.Count(out, "✓"))
}

func TestCheckUnknownKind(t *testing.T) {
	_, _, err := run(t, "", "check", "css", "color")
	var e *elerrors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, elerrors.CodeInvalidArgs, e.Code)
}

func TestExplain(t *testing.T) {
	out, _, err := run(t, "", "explain")
	require.NoError(t, err)
	for _, code := range elerrors.Codes() {
		assert.Contains(t, out, code)
	}

	out, _, err = run(t, "", "explain", "e103")
	require.NoError(t, err)
	assert.Contains(t, out, "Void element has children")

	_, _, err = run(t, "", "explain", "E999")
	require.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "", "demo", "--title", "Q&A")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, render.Doctype+`<html lang="en">`))
	assert.Contains(t, out, "<title>Q&amp;A</title>")
	assert.Contains(t, out, `<li data-index="3">&lt;script&gt; injection</li>`)
	assert.Contains(t, out, `<input id="q" name="q" type="search" required>`)

	frag, _, err := run(t, "", "demo", "--fragment")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(frag, "<header>"))
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestDemoRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newDemoRouter("Served", logger, reg))
	defer srv.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	code, body := get("/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<title>Served</title>")

	code, body = get("/list")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(body, `<ul class="features">`))

	code, body = get("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `el_renders_total{kind="document",status="success"} 1`)
	assert.Contains(t, body, `el_renders_total{kind="fragment",status="success"} 1`)
}
