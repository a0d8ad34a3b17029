package pprint

import (
	"cmp"
	"io"
	"math"
	"slices"

	"github.com/BurntSushi/toml"
)

// DecodeTOML reads a TOML document from r. Tables keep the key order of
// the document.
func DecodeTOML(r io.Reader) (Value, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	order := make(map[string]int)
	for i, k := range md.Keys() {
		if _, ok := order[k.String()]; !ok {
			order[k.String()] = i
		}
	}
	return fromTOML(doc, nil, order), nil
}

func fromTOML(x any, key toml.Key, order map[string]int) Value {
	switch x := x.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		pos := func(k string) int {
			if i, ok := order[slices.Concat(key, toml.Key{k}).String()]; ok {
				return i
			}
			return math.MaxInt
		}
		slices.SortFunc(keys, func(a, b string) int {
			return cmp.Or(cmp.Compare(pos(a), pos(b)), cmp.Compare(a, b))
		})
		out := make(Map, len(keys))
		for i, k := range keys {
			out[i] = Entry{Key: String(k), Value: fromTOML(x[k], slices.Concat(key, toml.Key{k}), order)}
		}
		return out
	case []map[string]any:
		out := make(Seq, len(x))
		for i, t := range x {
			out[i] = fromTOML(t, key, order)
		}
		return out
	case []any:
		out := make(Seq, len(x))
		for i, e := range x {
			out[i] = fromTOML(e, key, order)
		}
		return out
	default:
		return Of(x)
	}
}
