package domain

import "time"

// TokenEntry is a single push destination registered by a user.
type TokenEntry struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Platform  string    `json:"platform,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DedupTokens keeps the first entry seen for every token value and
// preserves the order of first appearance.
func DedupTokens(entries []TokenEntry) []TokenEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]TokenEntry, 0, len(entries))
	for _, e := range entries {
		if e.Token == "" {
			continue
		}
		if _, ok := seen[e.Token]; ok {
			continue
		}
		seen[e.Token] = struct{}{}
		out = append(out, e)
	}
	return out
}

// TokenValues extracts the raw token strings of entries.
func TokenValues(entries []TokenEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Token
	}
	return out
}
