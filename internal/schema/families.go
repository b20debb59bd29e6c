package schema

// Families returns the distinct column families referenced by cols.
// Duplicates collapse; the identifier column (and any column without a
// family) is excluded. Order is first-seen, so the result is deterministic
// for a given input, but callers must treat it as a set.
func Families(cols []*Column) []string {
	out := make([]string, 0, len(cols))
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if c == nil || c.IsID || c.Family == "" {
			continue
		}
		if _, ok := seen[c.Family]; ok {
			continue
		}
		seen[c.Family] = struct{}{}
		out = append(out, c.Family)
	}
	return out
}
