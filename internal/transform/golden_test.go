package transform

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// goldenFixture returns the named file's contents from arc, failing the
// test if it is missing.
func goldenFixture(t *testing.T, arc *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range arc.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("fixture missing %q", name)
	return ""
}

// stripPreamble removes the fixed NO_INSTRUMENT/ids-table/attribution
// header Transform writes ahead of the instrumented body, leaving the
// body text golden fixtures compare against: the table's exact id-to-
// location entries depend on parser column accounting a hand-written
// fixture has no reliable way to reproduce.
func stripPreamble(t *testing.T, out string) string {
	t.Helper()
	marker := "INSTRUMENTED BY"
	idx := strings.Index(out, marker)
	require.NotEqual(t, -1, idx, "missing attribution line in %q", out)
	nl := strings.IndexByte(out[idx:], '\n')
	require.NotEqual(t, -1, nl)
	return out[idx+nl+1:]
}

// TestGoldenFixtures runs every testdata/*.txtar archive's "input.js"
// through Transform and compares the instrumented body against
// "want.js", bundled per spec section 9's fixture-pairing convention
// (mirroring original_source/'s tests/basic/*.js + *.out pairing).
func TestGoldenFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no golden fixtures found")

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			arc, err := txtar.ParseFile(path)
			require.NoError(t, err)

			input := goldenFixture(t, arc, "input.js")
			want := goldenFixture(t, arc, "want.js")

			out, err := Transform("input.js", input, Options{InstPath: "input.js", OrigPath: "input.js"})
			require.NoError(t, err)

			body := stripPreamble(t, out)
			assert.Equal(t, strings.TrimRight(want, "\n"), strings.TrimRight(body, "\n"))
		})
	}
}
