package render

import (
	"sort"
	"strings"

	"github.com/rileyhilliard/glancehist/internal/history"
)

// MatchKind says how an item maps onto stored series.
type MatchKind int

const (
	// MatchNone means the item has no data yet.
	MatchNone MatchKind = iota
	// MatchExact means the item name is itself a series key.
	MatchExact
	// MatchFamily means the item name is the "_name" suffix of one or more keys.
	MatchFamily
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFamily:
		return "family"
	default:
		return "none"
	}
}

// Resolution lists the series keys that satisfy an item.
type Resolution struct {
	Kind MatchKind
	Keys []string
}

// Resolve decides which series of table an item draws. An exact key always
// wins; otherwise every key ending in "_"+name is collected in lexicographic
// order.
func Resolve(table *history.Table, item history.Item) Resolution {
	if table == nil {
		return Resolution{Kind: MatchNone}
	}

	if table.Has(item.Name) {
		return Resolution{Kind: MatchExact, Keys: []string{item.Name}}
	}

	suffix := "_" + item.Name
	var keys []string
	for _, key := range table.Keys() {
		if strings.HasSuffix(key, suffix) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return Resolution{Kind: MatchNone}
	}

	sort.Strings(keys)
	return Resolution{Kind: MatchFamily, Keys: keys}
}
