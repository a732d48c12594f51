package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T) (skaters, goalies string) {
	t.Helper()
	dir := t.TempDir()
	skaters = filepath.Join(dir, "skaters.csv")
	goalies = filepath.Join(dir, "goalies.csv")
	require.NoError(t, os.WriteFile(skaters, []byte("Player,Team,Pos,G,A\nAlpha One,TOR,C,2,1\nBravo Two,EDM,D,0,3\n"), 0o644))
	require.NoError(t, os.WriteFile(goalies, []byte("Player,Team,W,SV,SO\nGamma Three,FLA,1,10,0\n"), 0o644))
	return skaters, goalies
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SNAPSHOT_SOURCE", "csv")
	t.Setenv("ROUNDING_MODE", "")

	skaters, goalies := writeSnapshot(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--skaters", skaters, "--goalies", goalies))
	err := cmd.Execute()
	return out.String(), err
}

func TestRankDefaults(t *testing.T) {
	out, err := run(t, "rank")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "RANK")
	// Alpha: 2*6 + 1*4 = 16, Bravo: 3*4 = 12, Gamma: 1*2 + 10*0.5 = 7
	assert.Contains(t, lines[1], "Alpha One")
	assert.Contains(t, lines[1], "16.0")
	assert.Contains(t, lines[2], "Bravo Two")
	assert.Contains(t, lines[3], "Gamma Three")
	assert.Contains(t, lines[3], "Goalie")
}

func TestRankWeightsAndFilters(t *testing.T) {
	out, err := run(t, "rank", "--weights", "a=10", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Bravo Two")
	assert.Contains(t, out, "30.0")
	assert.NotContains(t, out, "Alpha One")

	out, err = run(t, "rank", "--position", "rw")
	require.NoError(t, err)
	assert.Equal(t, "No data\n", out)

	_, err = run(t, "rank", "--weights", "FOW=1")
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	out, err := run(t, "aggregate", "team", "--order", "group")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "TEAM"))
	assert.True(t, strings.HasPrefix(lines[1], "EDM"))
	assert.True(t, strings.HasPrefix(lines[3], "TOR"))

	_, err = run(t, "aggregate", "league")
	assert.Error(t, err)

	_, err = run(t, "aggregate", "position", "--order", "median")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := run(t, "export", "--out", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Rank", records[0][0])
	assert.Equal(t, "Alpha One", records[1][2])
}

func TestSummary(t *testing.T) {
	out, err := run(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total players")
	assert.Contains(t, out, "Top goalie")
	assert.Contains(t, out, "Gamma Three")
	assert.Contains(t, out, "Bravo Two")
}

func TestBadRounding(t *testing.T) {
	_, err := run(t, "rank", "--rounding", "banker")
	assert.Error(t, err)
}

func TestMissingSnapshotFile(t *testing.T) {
	t.Setenv("SNAPSHOT_SOURCE", "csv")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"rank", "--skaters", filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, cmd.Execute())
}
