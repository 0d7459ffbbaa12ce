package theme

import (
	"sort"
	"strconv"
	"strings"
)

// sizeOrder ranks the t-shirt size keys used by radius scales.
var sizeOrder = []string{"none", "xs", "sm", "DEFAULT", "md", "lg", "xl", "2xl", "3xl", "full"}

// RampNames returns the ramp names in display order.
func (t *Theme) RampNames() []string {
	return sortedKeys(t.Ramps, rampOrder...)
}

// Steps returns the ramp's steps, lightest first.
func (r Ramp) Steps() []string {
	return sortedKeys(r)
}

// RoleNames returns the role names in display order.
func (t *Theme) RoleNames() []string {
	return sortedKeys(t.Roles, roleOrder...)
}

// sortedKeys returns the keys of m in display order: keys listed in
// preferred first, then numeric keys ascending, then size keys, then the
// rest alphabetically.
func sortedKeys[V any](m map[string]V, preferred ...string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j], preferred)
	})
	return keys
}

func lessKey(a, b string, preferred []string) bool {
	ra, rb := keyRank(a, preferred), keyRank(b, preferred)
	if ra.class != rb.class {
		return ra.class < rb.class
	}
	if ra.class == rankOther {
		return a < b
	}
	if ra.pos != rb.pos {
		return ra.pos < rb.pos
	}
	return a < b
}

const (
	rankPreferred = iota
	rankNumeric
	rankSize
	rankOther
)

type rank struct {
	class int
	pos   float64
}

func keyRank(key string, preferred []string) rank {
	for i, p := range preferred {
		if p == key {
			return rank{rankPreferred, float64(i)}
		}
	}
	if n, ok := stopValue(key); ok {
		return rank{rankNumeric, n}
	}
	for i, s := range sizeOrder {
		if s == key {
			return rank{rankSize, float64(i)}
		}
	}
	return rank{class: rankOther}
}

// stopValue parses numeric keys and keyframe stops ("50", "0%", "from").
func stopValue(key string) (float64, bool) {
	switch key {
	case "from":
		return 0, true
	case "to":
		return 100, true
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(key, "%"), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
