package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Run("prints every constraint", func(t *testing.T) {
		out, err := run(t, "", "list")
		require.NoError(t, err)
		for _, want := range []string{"lipogram", "monovocalism", "tautogram", "alliteration"} {
			assert.Contains(t, out, want)
		}
		assert.Contains(t, out, "Lipogramme")
		assert.Contains(t, out, "Voyelle autorisée")
	})

	t.Run("emits JSON with --json", func(t *testing.T) {
		out, err := run(t, "", "list", "--json")
		require.NoError(t, err)
		var defs []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &defs))
		require.Len(t, defs, 4)
		assert.Equal(t, "lipogram", defs[0]["tag"])
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("passes conforming text from stdin", func(t *testing.T) {
		out, err := run(t, "Salut", "check", "--constraint", "lipogram", "--letter", "e")
		require.NoError(t, err)
		assert.Equal(t, "OK\n", out)
	})

	t.Run("prints the violation and exits with errViolation", func(t *testing.T) {
		out, err := run(t, "Le chat mange.", "check", "--constraint", "lipogram", "--letter", "e")
		require.ErrorIs(t, err, errViolation)
		assert.Contains(t, out, `Lettre interdite détectée : "e"`)
	})

	t.Run("lowercases the letter flag", func(t *testing.T) {
		out, err := run(t, "Salut", "check", "--constraint", "lipogram", "--letter", "E")
		require.NoError(t, err)
		assert.Equal(t, "OK\n", out)
	})

	t.Run("reads from a file argument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "texte.txt")
		require.NoError(t, os.WriteFile(path, []byte("papa"), 0o644))
		out, err := run(t, "", "check", "--constraint", "monovocalism", "--letter", "a", path)
		require.NoError(t, err)
		assert.Equal(t, "OK\n", out)
	})

	t.Run("rejects an unknown constraint tag", func(t *testing.T) {
		_, err := run(t, "Salut", "check", "--constraint", "haiku", "--letter", "e")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errViolation)
		assert.Contains(t, err.Error(), "unknown constraint")
	})

	t.Run("rejects a letter outside the option set", func(t *testing.T) {
		_, err := run(t, "Salut", "check", "--constraint", "monovocalism", "--letter", "z")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid option")
	})

	t.Run("emits JSON with --json", func(t *testing.T) {
		out, err := run(t, "bebe", "check", "--constraint", "monovocalism", "--letter", "a", "--json")
		require.ErrorIs(t, err, errViolation)
		var report checkReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.False(t, report.Result.Valid)
		assert.Equal(t, `Voyelle non autorisée détectée : "e"`, report.Result.Message)
	})
}

func TestBatchCommand(t *testing.T) {
	writeSuite := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("reports per-case results and a summary", func(t *testing.T) {
		path := writeSuite(t, `
cases:
  - name: sans-e
    constraint: lipogram
    letter: e
    text: Un grand matin froid.
  - name: tout-en-b
    constraint: alliteration
    letter: b
    text: Bernard mange beaucoup.
`)
		out, err := run(t, "", "batch", path)
		require.ErrorIs(t, err, errViolation)
		assert.Contains(t, out, "ok   sans-e (lipogram/e)")
		assert.Contains(t, out, `FAIL tout-en-b (alliteration/b): Le mot "mange" ne commence pas par la consonne "b"`)
		assert.Contains(t, out, "2 cases, 1 failed")
	})

	t.Run("succeeds when every case passes", func(t *testing.T) {
		path := writeSuite(t, `
cases:
  - name: papa
    constraint: monovocalism
    letter: a
    text: papa
`)
		out, err := run(t, "", "batch", path)
		require.NoError(t, err)
		assert.Contains(t, out, "1 cases, 0 failed")
	})

	t.Run("fails fast on an unknown constraint", func(t *testing.T) {
		path := writeSuite(t, `
cases:
  - constraint: haiku
    letter: e
    text: peu importe
`)
		_, err := run(t, "", "batch", path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errViolation)
	})

	t.Run("rejects a missing suite file", func(t *testing.T) {
		_, err := run(t, "", "batch", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
