package helper

import "github.com/lib/pq"

// AddToSet appends id to arr only when not already present (mongo
// $addToSet semantics for uuid[] columns).
func AddToSet(arr pq.StringArray, id string) pq.StringArray {
	for _, v := range arr {
		if v == id {
			return arr
		}
	}
	return append(arr, id)
}

// DedupeStrings keeps the first occurrence of each value, preserving order.
func DedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
