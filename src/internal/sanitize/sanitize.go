package sanitize

import (
    "strings"
    "unicode"
)

// CleanString trims and removes control characters up to max runes (if
// max <= 0, no truncation).
func CleanString(s string, max int) string {
    s = strings.TrimSpace(s)
    if s == "" {
        return s
    }
    var b strings.Builder
    n := 0
    for _, r := range s {
        if unicode.IsControl(r) {
            continue
        }
        b.WriteRune(r)
        n++
        if max > 0 && n >= max {
            break
        }
    }
    return strings.TrimSpace(b.String())
}

// CleanToken applies CleanString without a length bound; names are never cut.
func CleanToken(s string) string { return CleanString(s, 0) }

// CleanTokens cleans every token and keeps positions, so empty results stay
// in place for arity checks to report.
func CleanTokens(tokens []string) []string {
    if tokens == nil {
        return nil
    }
    out := make([]string, len(tokens))
    for i, t := range tokens {
        out[i] = CleanToken(t)
    }
    return out
}

// CleanMap cleans string values (and string lists) of a key-value name.
func CleanMap(m map[string]any) map[string]any {
    if m == nil {
        return nil
    }
    out := make(map[string]any, len(m))
    for k, v := range m {
        switch t := v.(type) {
        case string:
            out[k] = CleanToken(t)
        case []string:
            out[k] = CleanTokens(t)
        default:
            out[k] = v
        }
    }
    return out
}
