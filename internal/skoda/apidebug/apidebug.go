// Package apidebug reports unrecognized keys in garage API responses
// without leaking credentials or flooding operational logs. Reports go out
// at DEBUG by default and can be escalated to INFO via configuration.
package apidebug

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/carconnectivity/connector-skoda/internal/pkg/metrics"
	"github.com/carconnectivity/connector-skoda/pkg/log"
)

// TruncateLimit is the maximum number of characters of a rendered payload
// included in a log line before the ellipsis is appended.
const TruncateLimit = 300

const ellipsis = "..."

var credentialMarkers = []string{
	"password", "passwd", "secret", "token", "pin", "credential", "authorization",
}

// ExtraKeys returns the keys of payload that are not in allowed, sorted.
func ExtraKeys(payload map[string]any, allowed ...string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = struct{}{}
	}

	var extras []string
	for k := range payload {
		if _, ok := allowedSet[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return extras
}

// RemoveCredentials returns a copy of the mapping with values of
// credential-looking keys masked. Nested mappings and lists are walked
// recursively; the input is never modified.
func RemoveCredentials(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if isCredentialKey(k) {
			out[k] = "***"
			continue
		}
		out[k] = scrubValue(v)
	}
	return out
}

func isCredentialKey(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range credentialMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func scrubValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return RemoveCredentials(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = scrubValue(item)
		}
		return out
	default:
		return v
	}
}

// Render serializes a value for logging, falling back to a plain string
// rendering when JSON marshalling fails, and truncates the result to
// TruncateLimit characters plus the ellipsis.
func Render(v any) string {
	var s string
	if data, err := json.Marshal(v); err == nil {
		s = string(data)
	} else {
		s = fmt.Sprintf("%v", v)
	}
	return truncate(s, TruncateLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}

// LogExtraKeys emits a single log line when payload contains keys outside
// allowed: the context label, the extra keys, and a credential-redacted,
// truncated rendering of the payload. With no extra keys nothing is logged.
// Severity is DEBUG unless cfg escalates it to INFO.
func LogExtraKeys(logger log.Logger, cfg *Config, where string, payload map[string]any, allowed ...string) {
	extras := ExtraKeys(payload, allowed...)
	if len(extras) == 0 {
		return
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	if logger == nil {
		logger = log.Std()
	}

	metrics.ExtraKeysTotal.WithLabelValues(where).Inc()

	rendered := Render(RemoveCredentials(payload))
	msg := fmt.Sprintf("unexpected keys found in %s", where)
	if cfg.ShowExtraKeys {
		logger.Info(msg, "keys", extras, "payload", rendered)
		return
	}
	logger.Debug(msg, "keys", extras, "payload", rendered)
}
