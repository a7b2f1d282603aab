package logging

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCommandLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "api key flag",
			input: "assistant --api_key=abcdefghijklmnopqrstuvwxyz123456",
			want:  "assistant --api_key=" + RedactedText,
		},
		{
			name:  "provider secret key literal",
			input: "assistant sk-proj-abcdefghij1234567890",
			want:  "assistant " + RedactedText,
		},
		{
			name:  "plain command untouched",
			input: "claude --print",
			want:  "claude --print",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCommandLine(tt.input))
		})
	}
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", SanitizeError(nil))

	err := errors.New("request failed: Bearer eyJhbGc.eyJzdWI.SflKxw rejected")
	assert.Equal(t, "request failed: Bearer "+RedactedText+" rejected", SanitizeError(err))

	err = errors.New("401 for key sk-ant-abcdefghij12345")
	assert.NotContains(t, SanitizeError(err), "sk-ant")
}

func TestSanitizePrompt_Truncates(t *testing.T) {
	long := strings.Repeat("x", MaxPromptLogLength+50)
	got := SanitizePrompt(long)
	assert.Len(t, got, MaxPromptLogLength+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 5))
	assert.Equal(t, "ab...", TruncateString("abcdef", 2))
}
