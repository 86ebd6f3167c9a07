// Package sanitize turns arbitrary user-entered names into valid Python
// identifiers and file-safe artifact names. Every function is total and pure:
// any input string, including the empty string, maps to a defined output.
package sanitize

import (
	"fmt"
	"strings"
)

// EmptySentinel is the identifier returned for input that sanitizes to
// nothing (empty or all-symbol strings).
const EmptySentinel = "unnamed"

// ToSnakeCase lowercases s and collapses every run of characters outside
// [a-z0-9_] into a single underscore. A result starting with a digit gets a
// leading underscore so it remains a valid Python identifier. The empty
// string (and any string with no usable characters) maps to EmptySentinel.
func ToSnakeCase(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	out := b.String()
	if out == "" {
		return EmptySentinel
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// ToPascalCase derives a type name from s, e.g. "search docs" -> "SearchDocs".
// Used for generated parameter schema classes.
func ToPascalCase(s string) string {
	snake := ToSnakeCase(s)
	var b strings.Builder
	for _, word := range strings.Split(strings.TrimPrefix(snake, "_"), "_") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	out := b.String()
	if out == "" {
		return "Unnamed"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// ToKebabCase derives a deployment artifact name from s, e.g.
// "My Service" -> "my-service". Cloud Run service names use this form.
func ToKebabCase(s string) string {
	snake := ToSnakeCase(s)
	return strings.ReplaceAll(strings.Trim(snake, "_"), "_", "-")
}

// EscapeStringLiteral makes s safe to embed inside a double-quoted Python
// string literal. Backslashes are escaped before quotes; the reverse order
// would double-escape backslashes introduced by the quote pass. Newlines are
// encoded so multi-line prompts stay on one source line, and any remaining
// control character becomes a \xNN escape (Python source rejects raw NUL
// bytes, and pasted text can carry stray control characters).
func EscapeStringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)

	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `\x%02x`, r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// IsCanonical reports whether s is already in canonical snake_case form,
// i.e. sanitizing it would change nothing.
func IsCanonical(s string) bool {
	return s != "" && s == ToSnakeCase(s)
}
