package pprint

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads every YAML document in r and converts each with
// [FromYAML]. JSON input is accepted as well.
func DecodeYAML(r io.Reader) ([]Value, error) {
	dec := yaml.NewDecoder(r)
	var docs []Value
	for {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, err
		}
		v, err := FromYAML(&n)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
}

// FromYAML converts a YAML node, keeping mapping order. Scalars convert by
// their resolved tag. Mappings carrying a local tag, as in `!Point {x: 1}`,
// become records named after the tag; an alias to such a mapping refers to
// the same record. !!set mappings become sets. An alias pointing at one of
// its own ancestors renders as *anchor.
func FromYAML(n *yaml.Node) (Value, error) {
	return fromYAML(n, nil)
}

func fromYAML(n *yaml.Node, p map[*yaml.Node]struct{}) (Value, error) {
	if n == nil {
		return Null{}, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return fromYAML(n.Content[0], p)
	case yaml.AliasNode:
		if _, ok := p[n.Alias]; ok {
			return Text("*" + n.Value), nil
		}
		return fromYAML(n.Alias, p)
	case yaml.ScalarNode:
		return yamlScalar(n)
	}

	if p == nil {
		p = make(map[*yaml.Node]struct{})
	}
	p[n] = struct{}{}
	defer delete(p, n)

	switch n.Kind {
	case yaml.SequenceNode:
		out := make(Seq, len(n.Content))
		for i, c := range n.Content {
			v, err := fromYAML(c, p)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		if isLocalTag(n.Tag) {
			return Composite{&yamlRecord{n: n}}, nil
		}
		if n.ShortTag() == "!!set" {
			out := make(Set, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				k, err := fromYAML(n.Content[i], p)
				if err != nil {
					return nil, err
				}
				out = append(out, k)
			}
			return out, nil
		}
		out := make(Map, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := fromYAML(n.Content[i], p)
			if err != nil {
				return nil, err
			}
			v, err := fromYAML(n.Content[i+1], p)
			if err != nil {
				return nil, err
			}
			out = append(out, Entry{Key: k, Value: v})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: yaml node kind %d at line %d", ErrUnsupportedValue, n.Kind, n.Line)
	}
}

func yamlScalar(n *yaml.Node) (Value, error) {
	if isLocalTag(n.Tag) {
		return Enum(n.Value), nil
	}
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return Uint(u), nil
		}
		return Text(n.Value), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Float(f), nil
	case "!!timestamp":
		return Text(n.Value), nil
	default:
		return String(n.Value), nil
	}
}

// isLocalTag reports whether tag is an application tag such as !Point, as
// opposed to a core schema tag such as !!map.
func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") && len(tag) > 1
}

// yamlRecord exposes a tagged YAML mapping as a record.
type yamlRecord struct {
	n *yaml.Node
}

func (r *yamlRecord) identity() (Identity, bool) {
	return Identity(reflect.ValueOf(r.n).Pointer()), true
}

func (r *yamlRecord) TypeName() string {
	return strings.TrimPrefix(r.n.Tag, "!")
}

func (r *yamlRecord) Fields() ([]Field, error) {
	fields := make([]Field, 0, len(r.n.Content)/2)
	for i := 0; i+1 < len(r.n.Content); i += 2 {
		k := r.n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar field name at line %d", ErrUnsupportedValue, k.Line)
		}
		v, err := fromYAML(r.n.Content[i+1], nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.Value, err)
		}
		fields = append(fields, Field{Name: k.Value, Value: v})
	}
	return fields, nil
}
