// Package router resolves a parsed recipe's category to a destination
// section using a configurable mapping table.
package router

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/izebair/Rezepte/internal/common"
)

// Mapping maps a lowercased category key ("main" or "main<sep>sub") to a
// target section name. Loaded once at startup and read-only afterwards.
type Mapping map[string]string

// ParseMapping parses a category mapping from either a JSON object or the
// compact "key=value;key2=value2" format. Malformed input is a configuration
// error: the caller is expected to fail fast before any parsing begins.
func ParseMapping(s string) (Mapping, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Mapping{}, nil
	}

	if strings.HasPrefix(s, "{") {
		var raw map[string]string
		if err := json.Unmarshal([]byte(s), &raw); err != nil {
			return nil, fmt.Errorf("%w: category mapping is not valid JSON: %v", common.ErrInvalidConfig, err)
		}
		m := make(Mapping, len(raw))
		for k, v := range raw {
			m[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
		}
		return m, nil
	}

	m := make(Mapping)
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: malformed category mapping entry %q", common.ErrInvalidConfig, pair)
		}
		m[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return m, nil
}

// LoadMapping reads a mapping from a file containing either representation.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read category mapping file: %w", err)
	}
	return ParseMapping(string(data))
}
