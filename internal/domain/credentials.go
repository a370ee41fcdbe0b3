package domain

import (
	"strings"
)

const (
	redactedMarker  = "[REDACTED]"
	hintVisibleTail = 4
	minHintLength   = 12
)

// knownPlaceholders are the stub keys the seed catalog ships with.
//
//nolint:gochecknoglobals // Static lookup table
var knownPlaceholders = map[string]struct{}{
	"aizasy...":         {},
	"sk-ant-...":        {},
	"sk-...":            {},
	"xai-...":           {},
	"your-api-key":      {},
	"your_api_key_here": {},
	"changeme":          {},
}

// HasCredential reports whether a credential is present at all.
func HasCredential(credential string) bool {
	return strings.TrimSpace(credential) != ""
}

// IsPlaceholderCredential reports whether a credential is a known stub value.
// Truncated display values ending in an ellipsis count as placeholders.
func IsPlaceholderCredential(credential string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(credential))
	if _, ok := knownPlaceholders[trimmed]; ok {
		return true
	}
	return strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…")
}

// RedactCredential removes every occurrence of the credential from text.
func RedactCredential(text, credential string) string {
	if !HasCredential(credential) {
		return text
	}
	return strings.ReplaceAll(text, credential, redactedMarker)
}

// CredentialHint returns a display-safe hint such as "sk-…abcd".
func CredentialHint(credential string) string {
	trimmed := strings.TrimSpace(credential)
	switch {
	case trimmed == "":
		return ""
	case IsPlaceholderCredential(trimmed):
		return "placeholder"
	case len(trimmed) < minHintLength:
		return "…" + strings.Repeat("*", hintVisibleTail)
	}

	prefix := ""
	if idx := strings.Index(trimmed, "-"); idx > 0 && idx < 8 {
		prefix = trimmed[:idx+1]
	}
	return prefix + "…" + trimmed[len(trimmed)-hintVisibleTail:]
}
