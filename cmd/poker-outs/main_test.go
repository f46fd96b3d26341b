package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/pokerouts/outs"
	"github.com/lox/pokerouts/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	// Point at a missing file so tests never pick up a local config
	full := append([]string{"--config", filepath.Join(t.TempDir(), "missing.hcl"), "--no-color"}, args...)
	err := run(context.Background(), full, &stdout, &stderr, quartz.NewMock(t))
	return stdout.String(), stderr.String(), err
}

func TestCalcText(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--hand", "AdKh", "--board", "Jd8d3d4s")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "One Pair has the probability of 6%", lines[0])
	assert.Equal(t, "Two Pair has the probability of 12%", lines[1])
	assert.Equal(t, "Three Of A Kind has the probability of 6%", lines[2])
	assert.Equal(t, "Straight has the probability of 0%", lines[3])
	assert.Equal(t, "Flush has the probability of 18%", lines[4])
	assert.Equal(t, "Full House has the probability of 12%", lines[5])
}

func TestCalcShortFlagNames(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--mh", "AdKh", "--ch", "Jd8d3d4s", "-a", "--rank", "flush")
	require.NoError(t, err)
	assert.Equal(t, "Flush has the probability of 36%\n", out)
}

func TestCalcIsDefaultCommand(t *testing.T) {
	out, _, err := runCLI(t, "--mh", "AdKh", "--ch", "Jd8c3d", "--rank", "flush")
	require.NoError(t, err)
	assert.Equal(t, "Flush has the probability of 20%\n", out)
}

func TestCalcRankOrder(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--hand", "AdKh", "--board", "Jd8c3d", "--rank", "full house,flush")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Full House"))
	assert.True(t, strings.HasPrefix(lines[1], "Flush"))
}

func TestCalcJSON(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--hand", "AdKh", "--board", "Jd8d3dQs", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Street    string `json:"street"`
		DeckSize  int    `json:"deck_size"`
		Estimates []struct {
			Rank    string `json:"rank"`
			Outs    int    `json:"outs"`
			Percent int    `json:"percent"`
		} `json:"estimates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "turn", decoded.Street)
	assert.Equal(t, 46, decoded.DeckSize)
	require.Len(t, decoded.Estimates, len(outs.Ranks()))
	assert.Equal(t, "Flush", decoded.Estimates[4].Rank)
	assert.Equal(t, 9, decoded.Estimates[4].Outs)
	assert.Equal(t, 18, decoded.Estimates[4].Percent)
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad hand", args: []string{"calc", "--hand", "AdKx"}, want: "parsing hand"},
		{name: "bad board", args: []string{"calc", "--hand", "AdKh", "--board", "Jd8"}, want: "parsing board"},
		{name: "duplicate", args: []string{"calc", "--hand", "AdKh", "--board", "AdJc3s"}, want: "duplicate"},
		{name: "too many community", args: []string{"calc", "--hand", "AdKh", "--board", "2c3c4c5c6c7c"}, want: "community"},
		{name: "bad rank", args: []string{"calc", "--hand", "AdKh", "--rank", "royal"}, want: "royal"},
		{name: "bad format", args: []string{"calc", "--hand", "AdKh", "--format", "xml"}, want: "xml"},
		{name: "missing hand", args: []string{"calc", "--board", "Jd8c3d"}, want: "--hand"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDealIsReproducible(t *testing.T) {
	first, _, err := runCLI(t, "deal", "--seed", "42", "--street", "turn")
	require.NoError(t, err)
	second, _, err := runCLI(t, "deal", "--seed", "42", "--street", "turn")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "|")
	assert.Len(t, strings.Fields(lines[0]), 2+1+4)
}

func TestDealSituation(t *testing.T) {
	deck := poker.NewDeck()
	hole, board, err := dealSituation(deck, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, hole.CountCards())
	assert.Equal(t, 4, board.CountCards())
	assert.Zero(t, hole&board)
	assert.Equal(t, 46, deck.Len())

	short := poker.NewDeck()
	short.Deal(49)
	_, _, err = dealSituation(short, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board cards")

	empty := poker.NewDeck()
	empty.Deal(51)
	_, _, err = dealSituation(empty, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hole cards")
}

func TestDealJSONHasNoHeader(t *testing.T) {
	out, _, err := runCLI(t, "deal", "--seed", "7", "--street", "flop", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "flop", decoded["street"])
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerouts.hcl")
	src := `
log_level = "debug"

display {
  format = "table"
}

defaults {
  all_in = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"--config", path, "--no-color", "calc", "--hand", "AdKh", "--board", "Jd8d3d4s", "--rank", "flush"},
		&stdout, &stderr, quartz.NewMock(t))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "36%")
	assert.Contains(t, stderr.String(), "Analysis complete")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := runCLI(t, "--log-level", "loud", "calc", "--hand", "AdKh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
