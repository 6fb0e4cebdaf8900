//go:build linux
// +build linux

package ufw

// Added reports the rules present in after but not in before, in after's
// order. Rules are compared as (index, description) pairs, which is how an
// append is discovered: ufw assigns the new number, so the only way to learn
// it is to fetch again and subtract the old set.
//
// A successful single-rule add yields exactly one element. Concurrent
// external edits can yield zero or several; callers take the result as-is
// and do not try to disambiguate.
func Added(before, after []Rule) []Rule {
	seen := make(map[Rule]struct{}, len(before))
	for _, r := range before {
		seen[r] = struct{}{}
	}

	var added []Rule
	for _, r := range after {
		if _, ok := seen[r]; !ok {
			added = append(added, r)
		}
	}
	return added
}
