package slack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goslack "github.com/slack-go/slack"
)

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected section block")
	require.NotNil(t, section.Text)
	return section.Text.Text
}

func TestBuildTaskFailureMessage(t *testing.T) {
	blocks := BuildTaskFailureMessage("task-42", "failed", "exit status 1", "https://dash.example.com")

	require.Len(t, blocks, 2)
	text := sectionText(t, blocks[0])
	assert.Contains(t, text, "Task Failed")
	assert.Contains(t, text, "task-42")
	assert.Contains(t, text, "exit status 1")

	action, ok := blocks[1].(*goslack.ActionBlock)
	require.True(t, ok)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "https://dash.example.com/tasks/task-42", btn.URL)
}

func TestBuildTaskFailureMessage_Timeout(t *testing.T) {
	blocks := BuildTaskFailureMessage("task-7", "timeout", "", "")

	require.Len(t, blocks, 1, "no dashboard URL, no button")
	assert.Contains(t, sectionText(t, blocks[0]), "Task Timed Out")
}

func TestBuildTaskFailureMessage_TruncatesLongError(t *testing.T) {
	longError := strings.Repeat("x", 5000)

	blocks := BuildTaskFailureMessage("task-1", "failed", longError, "")

	text := sectionText(t, blocks[0])
	assert.Less(t, len(text), 3100)
	assert.Contains(t, text, "truncated")
}

func TestBuildBudgetMessage(t *testing.T) {
	t.Run("warning", func(t *testing.T) {
		blocks := BuildBudgetMessage(false, 400, 500)

		require.Len(t, blocks, 1)
		text := sectionText(t, blocks[0])
		assert.Contains(t, text, "Daily Budget Warning")
		assert.Contains(t, text, "$4.00")
		assert.Contains(t, text, "$5.00")
	})

	t.Run("exceeded", func(t *testing.T) {
		blocks := BuildBudgetMessage(true, 512, 500)

		text := sectionText(t, blocks[0])
		assert.Contains(t, text, "Daily Budget Exceeded")
		assert.Contains(t, text, "blocked until the daily reset")
	})
}
