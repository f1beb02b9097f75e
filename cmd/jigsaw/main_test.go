package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/puzzle"
	"github.com/katalvlaran/jigsaw/puzzlecsv"
)

// execute runs a fresh root command with args and returns its output.
func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

// chdir moves into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestRun_GenerateThenSolve(t *testing.T) {
	t.Setenv("JIGSAW_LOG_LEVEL", "error")
	dir := t.TempDir()
	problem := filepath.Join(dir, "problem.csv")
	solution := filepath.Join(dir, "solution.csv")

	_, err := execute(t, "gen", "3x4", "--seed", "5", "--out", problem)
	require.NoError(t, err)

	stdout, err := execute(t, "--in", problem, "--out", solution, "--render", "--strict")
	require.NoError(t, err)

	tab, err := puzzlecsv.ReadFile(solution)
	require.NoError(t, err)
	require.Len(t, tab.Records, 12)
	for _, rec := range tab.Records {
		assert.NotEmpty(t, rec.Orientation, rec.ID)
		assert.NotEmpty(t, rec.Row, rec.ID)
		assert.NotEmpty(t, rec.Col, rec.ID)
	}
	assert.Equal(t, 3, bytes.Count([]byte(stdout), []byte("\n")))
}

func TestRun_ConfigFile(t *testing.T) {
	t.Setenv("JIGSAW_LOG_LEVEL", "error")
	dir := t.TempDir()
	problem := filepath.Join(dir, "p.csv")
	solution := filepath.Join(dir, "s.csv")
	writeFile(t, problem, "id,top,right,bottom,left,orientation,row,col\n"+
		"A,,x,,,N,0,0\n"+
		"B,,,,x,,,\n"+
		"C,q,,,,,,\n")
	cfgPath := filepath.Join(dir, "jigsaw.toml")
	writeFile(t, cfgPath, "input = \""+filepath.ToSlash(problem)+"\"\n"+
		"output = \""+filepath.ToSlash(solution)+"\"\n"+
		"log_no_color = true\n")

	// C is unreachable: fails by default
	_, err := execute(t, "--config", cfgPath)
	assert.ErrorIs(t, err, puzzle.ErrIncompletePuzzle)
	assert.ErrorContains(t, err, "unreachable")

	_, err = execute(t, "--config", cfgPath, "--allow-partial")
	require.NoError(t, err)
	tab, err := puzzlecsv.ReadFile(solution)
	require.NoError(t, err)
	assert.Equal(t, "N", tab.Records[1].Orientation)
	assert.Equal(t, "1", tab.Records[1].Col)
	assert.Equal(t, "", tab.Records[2].Orientation)
}

// TestRun_GenOutputDefault writes gen output to problem.csv unless --out or
// the config file names one.
func TestRun_GenOutputDefault(t *testing.T) {
	t.Setenv("JIGSAW_LOG_LEVEL", "error")
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, "quiet.toml", "log_no_color = true\n")
	_, err := execute(t, "gen", "2x3", "--config", "quiet.toml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "problem.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "solution.csv"))

	writeFile(t, "named.toml", "output = \"named.csv\"\n")
	_, err = execute(t, "gen", "2x3", "--config", "named.toml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "named.csv"))

	_, err = execute(t, "gen", "2x3", "--config", "named.toml", "-o", "flag.csv")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "flag.csv"))
}

// TestRun_StrictLayoutCheck writes overlapping placements unless --strict
// asks for the assembled board to be checked.
func TestRun_StrictLayoutCheck(t *testing.T) {
	t.Setenv("JIGSAW_LOG_LEVEL", "error")
	dir := t.TempDir()
	problem := filepath.Join(dir, "p.csv")
	solution := filepath.Join(dir, "s.csv")
	// D below B and E right of C both land on (1,1).
	writeFile(t, problem, "id,top,right,bottom,left,orientation,row,col\n"+
		"A,,x,y,,N,0,0\n"+
		"B,,,z,x,,,\n"+
		"C,y,w,,,,,\n"+
		"D,z,,,,,,\n"+
		"E,,,,w,,,\n")

	_, err := execute(t, "--in", problem, "--out", solution)
	require.NoError(t, err)
	tab, err := puzzlecsv.ReadFile(solution)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, []string{tab.Records[3].Row, tab.Records[3].Col})
	assert.Equal(t, []string{"1", "1"}, []string{tab.Records[4].Row, tab.Records[4].Col})

	require.NoError(t, os.Remove(solution))
	_, err = execute(t, "--in", problem, "--out", solution, "--strict")
	assert.ErrorIs(t, err, grid.ErrOverlap)
	assert.NoFileExists(t, solution)
}

func TestRun_BadInput(t *testing.T) {
	t.Setenv("JIGSAW_LOG_LEVEL", "error")
	dir := t.TempDir()

	_, err := execute(t, "--in", filepath.Join(dir, "none.csv"))
	assert.Error(t, err)

	_, err = execute(t, "--bogus")
	assert.ErrorContains(t, err, "unknown flag")

	_, err = execute(t, "gen", "3by4", "--out", filepath.Join(dir, "x.csv"))
	assert.ErrorContains(t, err, "ROWSxCOLS")

	_, err = execute(t, "gen")
	assert.Error(t, err)

	_, err = execute(t, "--config", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestParseDims(t *testing.T) {
	r, c, err := parseDims("4X7")
	require.NoError(t, err)
	assert.Equal(t, [2]int{4, 7}, [2]int{r, c})
	_, _, err = parseDims("4x")
	assert.Error(t, err)
}
