package measurement

import "regexp"

// groupKeyPattern matches the shortest leading text that ends in a space and
// three digits, e.g. "Part 001" in "Part 001 S11.prn".
var groupKeyPattern = regexp.MustCompile(`^(.+? \d{3})`)

// GroupKey extracts the group key from a filename.
func GroupKey(name string) (string, bool) {
	m := groupKeyPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// GroupByPrefix buckets filenames by group key. Groups come back in the order
// their key was first seen and members keep their input order. Names without a
// key are dropped.
func GroupByPrefix(names []string) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, name := range names {
		key, ok := GroupKey(name)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Files = append(groups[i].Files, name)
	}

	return groups
}
