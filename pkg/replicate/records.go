package replicate

import (
	"sort"
	"strconv"
	"strings"
)

// InstancePrefix computes the identifier prefix for the instance at index
// under the given seed: "seed_N-" when seed is non-empty, "N-" otherwise.
// Template.CreateInstance applies this same scheme with its own counter.
func InstancePrefix(seed string, index int) string {
	if seed != "" {
		return seed + "_" + strconv.Itoa(index) + "-"
	}
	return strconv.Itoa(index) + "-"
}

// Record holds the submitted values of one replicated instance, keyed by
// the bare control name the template declared.
type Record struct {
	Index  int                 `json:"index"`
	Values map[string][]string `json:"values"`
}

// GroupSubmission splits submitted form values back into per-instance
// records by undoing the prefix scheme: a key like "addr_1-email" lands in
// the record for index 1 under the bare name "email". Keys that do not
// match the seed's prefix shape are ignored, so unrelated form fields can
// share the payload. Records come back ordered by instance index.
func GroupSubmission(values map[string][]string, seed string) []Record {
	byIndex := map[int]map[string][]string{}

	for key, vals := range values {
		index, name, ok := splitPrefixedName(key, seed)
		if !ok {
			continue
		}
		record := byIndex[index]
		if record == nil {
			record = map[string][]string{}
			byIndex[index] = record
		}
		record[name] = append(record[name], vals...)
	}

	indexes := make([]int, 0, len(byIndex))
	for index := range byIndex {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	out := make([]Record, 0, len(indexes))
	for _, index := range indexes {
		out = append(out, Record{Index: index, Values: byIndex[index]})
	}
	return out
}

// splitPrefixedName decomposes a prefixed control name into its instance
// index and bare name. The bare name may be empty: controls captured
// without an id or name submit under a prefix-only identifier.
func splitPrefixedName(key, seed string) (int, string, bool) {
	rest := key
	if seed != "" {
		var found bool
		rest, found = strings.CutPrefix(key, seed+"_")
		if !found {
			return 0, "", false
		}
	}

	dash := strings.IndexByte(rest, '-')
	if dash <= 0 {
		return 0, "", false
	}
	index, err := strconv.Atoi(rest[:dash])
	if err != nil || index < 0 {
		return 0, "", false
	}
	return index, rest[dash+1:], true
}
