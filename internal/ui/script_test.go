package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_ReplaysResponsesInOrder(t *testing.T) {
	s := NewScript(Decline, Accept)

	r, err := s.PromptChoice("a")
	require.NoError(t, err)
	assert.Equal(t, Decline, r)

	r, err = s.PromptChoice("b")
	require.NoError(t, err)
	assert.Equal(t, Accept, r)

	assert.Equal(t, []string{"a", "b"}, s.Prompted)
}

func TestScript_ExhaustedScriptErrors(t *testing.T) {
	s := NewScript(Accept)

	_, err := s.PromptChoice("a")
	require.NoError(t, err)

	_, err = s.PromptChoice("b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script exhausted")
}

func TestScript_RecordsMessagesAndTables(t *testing.T) {
	s := NewScript()
	s.ShowTables = true

	s.Info("hello")
	s.ShowTable(Table{Header: []string{"Name"}})

	assert.Equal(t, []string{"hello"}, s.Messages)
	require.Len(t, s.Tables, 1)
	assert.True(t, s.TablesEnabled())
}

func TestResponse_String(t *testing.T) {
	assert.Equal(t, "accept", Accept.String())
	assert.Equal(t, "decline", Decline.String())
	assert.Equal(t, "abort", Abort.String())
}
