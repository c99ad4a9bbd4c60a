package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Empty(t *testing.T) {
	useTestServices(t)

	out, err := execute(t, "", "history")

	require.NoError(t, err)
	assert.Equal(t, "No calculations recorded.\n", out)
}

func TestHistoryCmd_ListsNewestFirst(t *testing.T) {
	useTestServices(t)
	for _, expr := range []string{"1+1", "2*3", "1/0"} {
		_, err := execute(t, "", "eval", expr)
		require.NoError(t, err)
	}

	out, err := execute(t, "", "history", "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "TIME")
	assert.Contains(t, lines[0], "EXPRESSION")
	assert.Contains(t, lines[0], "RESULT")
	assert.Contains(t, lines[1], "1/0")
	assert.Contains(t, lines[1], "error: ")
	assert.Contains(t, lines[2], "2*3")
	assert.Contains(t, lines[2], "6")
	assert.Contains(t, lines[3], "1+1")
}

func TestHistoryCmd_Limit(t *testing.T) {
	useTestServices(t)
	for _, expr := range []string{"1+1", "2*3"} {
		_, err := execute(t, "", "eval", expr)
		require.NoError(t, err)
	}

	out, err := execute(t, "", "history", "--limit", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "2*3")
	assert.NotContains(t, out, "1+1")
}

func TestHistoryCmd_Clear(t *testing.T) {
	useTestServices(t)
	_, err := execute(t, "", "eval", "1+1")
	require.NoError(t, err)

	out, err := execute(t, "", "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared.\n", out)

	out, err = execute(t, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "No calculations recorded.\n", out)
}

func TestHistoryCmd_NoService(t *testing.T) {
	useTestServices(t)
	historyService = nil

	_, err := execute(t, "", "history")
	assert.EqualError(t, err, "history service not configured")

	_, err = execute(t, "", "history", "clear")
	assert.EqualError(t, err, "history service not configured")
}
