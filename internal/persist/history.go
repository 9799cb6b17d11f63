package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tubedeck/tubedeck/internal/models"
)

const maxHistoryEntries = 10

// LoadSearchHistory reads the separately-keyed search history array. An
// absent key yields an empty list; the result is normalized to at most
// ten deduplicated entries, most-recent-first.
func LoadSearchHistory(kv KVStore) ([]string, error) {
	data, err := kv.Load(HistoryKey)
	if errors.Is(err, models.ErrStateNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load search history: %w", err)
	}

	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("parse search history: %w", err)
	}

	return normalizeHistory(terms), nil
}

// SaveSearchHistory overwrites the search history key with a normalized
// copy of terms.
func SaveSearchHistory(kv KVStore, terms []string) error {
	data, err := json.Marshal(normalizeHistory(terms))
	if err != nil {
		return fmt.Errorf("marshal search history: %w", err)
	}
	if err := kv.Save(HistoryKey, data); err != nil {
		return fmt.Errorf("save search history: %w", err)
	}
	return nil
}

// normalizeHistory enforces the history invariant: no blanks, no
// duplicates (first occurrence wins, so most-recent-first order is kept),
// at most maxHistoryEntries entries.
func normalizeHistory(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, maxHistoryEntries)
	for _, t := range terms {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
		if len(out) == maxHistoryEntries {
			break
		}
	}
	return out
}
