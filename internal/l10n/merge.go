package l10n

// Merge synchronizes target against the master key list in source.
//
// The result follows source's key order. A key found in target keeps the
// target's value and takes the source's comment. A key missing from target
// becomes an empty-valued entry when fillWithEmpty is set and is dropped
// otherwise. Target keys absent from source are dropped. With duplicate keys
// in target the first occurrence wins. Neither input is modified.
func Merge(source, target []Entry, fillWithEmpty bool) []Entry {
	byKey := make(map[string]int, len(target))
	for i, e := range target {
		if _, seen := byKey[e.Key]; !seen {
			byKey[e.Key] = i
		}
	}

	merged := make([]Entry, 0, len(source))
	for _, s := range source {
		i, found := byKey[s.Key]
		switch {
		case found:
			merged = append(merged, Entry{Key: s.Key, Value: target[i].Value, Comment: s.Comment})
		case fillWithEmpty:
			merged = append(merged, Entry{Key: s.Key, Value: "", Comment: s.Comment})
		}
	}
	return merged
}
