package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const flatRecords = `[
  {"id": 1, "name": "root"},
  {"id": 2, "parentId": 1, "name": "a"},
  {"id": 3, "parentId": 1, "name": "b"},
  {"id": 4, "parentId": 2, "name": "c"}
]`

func TestTreeCommand(t *testing.T) {
	t.Run("from stdin", func(t *testing.T) {
		out, _, err := run(t, flatRecords, "tree")
		require.NoError(t, err)

		var roots []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &roots))
		require.Len(t, roots, 1)
		assert.Equal(t, "root", roots[0]["name"])

		children, ok := roots[0]["children"].([]any)
		require.True(t, ok)
		require.Len(t, children, 2)
		first := children[0].(map[string]any)
		assert.Equal(t, "a", first["name"])
		assert.Len(t, first["children"], 1)
	})

	t.Run("from yaml file with custom fields", func(t *testing.T) {
		path := writeFile(t, "menu.yaml", `
- key: home
- key: about
  up: home
`)
		out, _, err := run(t, "", "tree", path, "--id", "key", "--parent-id", "up", "--children", "items", "--format", "yaml")
		require.NoError(t, err)

		var roots []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &roots))
		require.Len(t, roots, 1)
		assert.Equal(t, "home", roots[0]["key"])
		assert.Len(t, roots[0]["items"], 1)
	})

	t.Run("field names from environment", func(t *testing.T) {
		t.Setenv("UTILKIT_TREE_PARENT_ID_FIELD", "pid")
		out, _, err := run(t, `[{"id": "x"}, {"id": "y", "pid": "x"}]`, "tree")
		require.NoError(t, err)

		var roots []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &roots))
		require.Len(t, roots, 1)
		assert.Len(t, roots[0]["children"], 1)
	})

	t.Run("empty input", func(t *testing.T) {
		out, _, err := run(t, "", "tree")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "tree", filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "opening input")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, err := run(t, flatRecords, "tree", "--format", "xml")
		assert.ErrorContains(t, err, "invalid --format")
	})
}

func TestFlattenCommand(t *testing.T) {
	forest := `[{"id": 1, "children": [{"id": 2, "children": [{"id": 3}]}, {"id": 4}]}]`

	out, _, err := run(t, forest, "flatten")
	require.NoError(t, err)

	var flat []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &flat))

	ids := make([]float64, 0, len(flat))
	for _, n := range flat {
		ids = append(ids, n["id"].(float64))
	}
	assert.Equal(t, []float64{3, 2, 4, 1}, ids)
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, _, err := run(t, "", "check", "email", "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("invalid", func(t *testing.T) {
		out, _, err := run(t, "", "check", "email", "user@example")
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "invalid: please enter a valid email address")
	})

	t.Run("length rule with flags", func(t *testing.T) {
		out, _, err := run(t, "", "check", "length", "abc", "--min", "5", "--label", "Name")
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "Name length must be at least 5")
	})

	t.Run("rule name is case insensitive", func(t *testing.T) {
		_, _, err := run(t, "", "check", "UUID", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		assert.NoError(t, err)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, _, err := run(t, "", "check", "zip", "12345")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalid)
		assert.ErrorContains(t, err, "unknown rule")
	})
}

func TestDateCommand(t *testing.T) {
	out, _, err := run(t, "", "date", "yyyy/MM/dd hh:mm", "--at", "2024-03-05T07:08:09Z")
	require.NoError(t, err)
	assert.Equal(t, "2024/03/05 07:08\n", out)

	_, _, err = run(t, "", "date", "--at", "yesterday")
	assert.ErrorContains(t, err, "invalid --at")
}

func TestWaitCommand(t *testing.T) {
	t.Run("file appears", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ready")
		go func() {
			time.Sleep(20 * time.Millisecond)
			_ = os.WriteFile(path, nil, 0o644)
		}()

		out, _, err := run(t, "", "wait", path, "--interval", "5ms", "--timeout", "5s")
		require.NoError(t, err)
		assert.Equal(t, path+"\n", out)
	})

	t.Run("timeout is logged", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "never")

		out, logs, err := run(t, "", "wait", path, "--interval", "5ms", "--timeout", "20ms", "--log-level", "error")
		assert.ErrorContains(t, err, "did not appear")
		assert.Empty(t, out)
		assert.Contains(t, logs, "condition not met")
		assert.Contains(t, logs, "command=wait")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := run(t, "", "wait", "x", "--log-level", "loud")
		assert.Error(t, err)
	})
}
