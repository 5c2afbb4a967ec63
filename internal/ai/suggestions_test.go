package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMessageSuggestions_AlwaysThreeWithPlaceholder(t *testing.T) {
	cases := []struct {
		objective    string
		audienceType string
	}{
		{"win-back", ""},
		{"re-activate inactive buyers", ""},
		{"new collection launch", ""},
		{"", "high value"},
		{"", "VIP members"},
		{"", ""},
	}

	for _, tc := range cases {
		suggestions := GenerateMessageSuggestions(tc.objective, tc.audienceType, "friendly")

		require.Len(t, suggestions, 3)
		for _, s := range suggestions {
			assert.True(t, strings.Contains(s, "{name}"), "suggestion %q missing {name}", s)
		}
	}
}

func TestGenerateMessageSuggestions_ObjectiveWinsOverAudience(t *testing.T) {
	winBack := GenerateMessageSuggestions("win-back", "vip", "")
	vipOnly := GenerateMessageSuggestions("", "vip", "")

	assert.NotEqual(t, vipOnly, winBack)
	assert.Contains(t, winBack[0], "we miss you")
}

func TestGenerateMessageSuggestions_Deterministic(t *testing.T) {
	first := GenerateMessageSuggestions("launch", "", "")
	second := GenerateMessageSuggestions("launch", "", "")

	assert.Equal(t, first, second)
}
