package logging

import (
	"regexp"
)

const (
	// MaxPromptLogLength is the maximum length of a prompt to log
	MaxPromptLogLength = 200
	// RedactedText is the replacement text for sensitive data
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match potential API keys passed as flags or env assignments
	// Matches: api_key=xxx, apikey=xxx, key=xxx (until next delimiter)
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}`)

	// Pattern to match JWT and bearer tokens (three base64 segments separated by dots)
	bearerPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+\.[A-Za-z0-9-_]*`)

	// Pattern to match provider secret key literals (OpenAI/Anthropic style prefixes)
	secretKeyPattern = regexp.MustCompile(`sk-[A-Za-z0-9-_]{10,}`)
)

// SanitizeCommandLine removes sensitive data from an assistant command line
// before logging it.
func SanitizeCommandLine(cmdLine string) string {
	if cmdLine == "" {
		return ""
	}

	sanitized := apiKeyPattern.ReplaceAllString(cmdLine, "${1}="+RedactedText)
	sanitized = secretKeyPattern.ReplaceAllString(sanitized, RedactedText)

	return sanitized
}

// SanitizeError sanitizes error messages that might contain sensitive data.
// Use this before logging any error from assistant or API operations.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := apiKeyPattern.ReplaceAllString(err.Error(), "${1}="+RedactedText)
	sanitized = bearerPattern.ReplaceAllString(sanitized, "Bearer "+RedactedText)
	sanitized = secretKeyPattern.ReplaceAllString(sanitized, RedactedText)

	return sanitized
}

// SanitizePrompt truncates a prompt for logging. Prompts embed user data
// previews, so only a short prefix is ever logged.
func SanitizePrompt(prompt string) string {
	if prompt == "" {
		return ""
	}

	sanitized := TruncateString(prompt, MaxPromptLogLength)
	sanitized = secretKeyPattern.ReplaceAllString(sanitized, RedactedText)

	return sanitized
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
