package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosemsim/config"
)

//	R ─▶ A ─▶ A1 (alt_id X:1)
//	│    └──▶ A2
//	└──▶ B ─▶ B1
const testOBO = `format-version: 1.2
data-version: test

[Term]
id: R
name: root
namespace: test

[Term]
id: A
name: a
namespace: test
is_a: R

[Term]
id: B
name: b
namespace: test
relationship: part_of R

[Term]
id: A1
name: a1
namespace: test
alt_id: X:1
is_a: A

[Term]
id: A2
name: a2
namespace: test
is_a: A

[Term]
id: B1
name: b1
namespace: test
is_a: B
`

func gafLine(entity, term string) string {
	return strings.Join([]string{
		"DB", entity, entity + "_SYM", "enables", term, "REF", "IDA", "", "F",
		entity + " name", "", "protein", "taxon:1", "20240101", "DB",
	}, "\t")
}

type fixture struct {
	dir, obo, gaf, pairs string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	fx := fixture{
		dir:   dir,
		obo:   filepath.Join(dir, "test.obo"),
		gaf:   filepath.Join(dir, "test.gaf"),
		pairs: filepath.Join(dir, "pairs.tsv"),
	}
	gaf := strings.Join([]string{
		"!gaf-version: 2.2",
		gafLine("P1", "A1"),
		gafLine("P1", "B1"),
		gafLine("P2", "X:1"),
		gafLine("P2", "A2"),
		gafLine("P2", "GO:missing"),
	}, "\n") + "\n"

	require.NoError(t, os.WriteFile(fx.obo, []byte(testOBO), 0o600))
	require.NoError(t, os.WriteFile(fx.gaf, []byte(gaf), 0o600))
	require.NoError(t, os.WriteFile(fx.pairs, []byte("# a b\nP1\tP2\n\nP1\tNOPE\n"), 0o600))

	return fx
}

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// table splits tabwriter output into whitespace-separated rows.
func table(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rows = append(rows, strings.Fields(line))
	}

	return rows
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gosemsim version 0.1.0 (build: dev)\n", out)
}

func TestStats(t *testing.T) {
	fx := newFixture(t)
	out, _, err := run(t, "stats", "--ontology", fx.obo)
	require.NoError(t, err)

	rows := table(out)
	assert.Contains(t, rows, []string{"terms", "6"})
	assert.Contains(t, rows, []string{"relationships", "5"})
	assert.Contains(t, rows, []string{"aliases", "1"})
	assert.Contains(t, rows, []string{"roots", "[R]"})
	assert.Contains(t, rows, []string{"state", "lower-bounds-ready"})
}

func TestTerm(t *testing.T) {
	fx := newFixture(t)
	out, _, err := run(t, "term", "X:1", "A2", "--ontology", fx.obo)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"ic(A1)", "2.585"},
		{"ic(A2)", "2.585"},
		{"lca", "A"},
		{"resnik", "1"},
	}, table(out))

	_, _, err = run(t, "term", "A1", "nope", "--ontology", fx.obo)
	assert.Error(t, err)
}

func TestTerm_ConfigFile(t *testing.T) {
	fx := newFixture(t)
	cfg := config.DefaultConfig()
	cfg.Ontology.Path = fx.obo
	cfg.Similarity.Method = "lin"
	cfg.Precompute.Strategy = "bitset"
	path := filepath.Join(fx.dir, "gosemsim.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	out, _, err := run(t, "term", "A1", "A2", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, table(out), []string{"lin", "0.387"})

	// Flags win over the file.
	out, _, err = run(t, "term", "A1", "B1", "-c", path, "--method", "pekar")
	require.NoError(t, err)
	assert.Contains(t, table(out), []string{"lca", "R"})
	assert.Contains(t, table(out), []string{"pekar", "0"})
}

func TestEntity(t *testing.T) {
	fx := newFixture(t)
	out, logs, err := run(t, "entity", "P1", "P2",
		"--ontology", fx.obo, "--annotations", fx.gaf, "--strategy", "avg", "--concurrency", "3")
	require.NoError(t, err)
	assert.Equal(t, "P1\tP2\t0.896\n", out)
	assert.Contains(t, logs, "annotation dropped")
	assert.Contains(t, logs, "GO:missing")

	_, _, err = run(t, "entity", "P1", "NOPE", "--ontology", fx.obo, "--annotations", fx.gaf)
	assert.ErrorIs(t, err, errUnknownEntity)
}

func TestBatch(t *testing.T) {
	fx := newFixture(t)
	out, logs, err := run(t, "batch", fx.pairs,
		"--ontology", fx.obo, "--annotations", fx.gaf, "--strategy", "avg")
	require.NoError(t, err)
	assert.Equal(t, "P1\tP2\t0.896\nP1\tNOPE\tabsent\n", out)
	assert.Contains(t, logs, "pair not scored")
	assert.Contains(t, logs, "pairs=2")
}

func TestErrors(t *testing.T) {
	fx := newFixture(t)

	_, _, err := run(t, "stats")
	assert.ErrorIs(t, err, errNoOntology)

	_, _, err = run(t, "entity", "P1", "P2", "--ontology", fx.obo)
	assert.ErrorIs(t, err, errNoAnnotations)

	_, _, err = run(t, "stats", "--ontology", fx.obo, "--method", "cosine")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "stats", "--ontology", fx.obo, "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "term", "A1")
	assert.Error(t, err)
}
