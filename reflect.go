package pprint

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Of converts an ordinary Go value into a [Value].
//
// Values that already are a [Value] are returned unchanged. [Printable],
// [SimplePrintable] and [Record] implementations are wrapped. Otherwise:
//
//   - nil, nil pointers, nil maps and nil interfaces become Null
//   - booleans, integers, floats and strings become leaves
//   - named integer types implementing fmt.Stringer become Enum
//   - other fmt.Stringer and error implementations render as their text
//   - slices and arrays become Seq; maps with struct{} values become Set
//   - maps become Map, sorted by key
//   - structs and pointers to structs become Composite; pointers give the
//     record an identity, so cycles through them are detected
//
// Struct fields are enumerated in declaration order. The struct tag
// `pprint:"name,nested"` renames a field or marks it nested, and
// `pprint:"-"` skips it. Unexported fields are read through reflection and
// never treated as implementing any interface.
//
// Conversion of slices, maps and non-struct pointers is eager; a container
// reached again while converting itself renders as [...] or {...}. Struct
// fields are converted lazily, when the record is formatted.
func Of(x any) Value {
	if x == nil {
		return Null{}
	}
	if v, ok := x.(Value); ok {
		return v
	}
	return fromReflect(reflect.ValueOf(x), nil)
}

// path holds the containers being converted, to cut cycles among them.
type path map[uintptr]struct{}

func fromReflect(v reflect.Value, p path) Value {
	if !v.IsValid() {
		return Null{}
	}
	if isNilable(v.Kind()) && v.IsNil() {
		return Null{}
	}
	if val, ok := fromInterface(v); ok {
		return val
	}

	switch v.Kind() {
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(v.Uint())
	case reflect.Float32:
		f, _ := strconv.ParseFloat(strconv.FormatFloat(v.Float(), 'g', -1, 32), 64)
		return Float(f)
	case reflect.Float64:
		return Float(v.Float())
	case reflect.Complex64:
		return Text(strconv.FormatComplex(v.Complex(), 'g', -1, 64))
	case reflect.Complex128:
		return Text(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.String:
		return String(v.String())
	case reflect.Interface:
		return fromReflect(v.Elem(), p)
	case reflect.Pointer:
		if v.Elem().Kind() == reflect.Struct {
			return Composite{&structRecord{v: v.Elem(), path: maps.Clone(p), id: Identity(v.Pointer()), hasID: true}}
		}
		return within(v, p, "*...", func(p path) Value { return fromReflect(v.Elem(), p) })
	case reflect.Struct:
		return Composite{&structRecord{v: v, path: maps.Clone(p)}}
	case reflect.Slice:
		return within(v, p, "[...]", func(p path) Value { return fromList(v, p) })
	case reflect.Array:
		return fromList(v, p)
	case reflect.Map:
		return within(v, p, "{...}", func(p path) Value { return fromMap(v, p) })
	case reflect.Func, reflect.Chan:
		return Text(v.Type().String())
	case reflect.UnsafePointer:
		return Text(fmt.Sprintf("%#x", v.Pointer()))
	default:
		return Text(v.Type().String())
	}
}

// fromInterface honors the interfaces v implements. It reports false when v
// implements none of them or cannot be inspected, as for unexported fields.
func fromInterface(v reflect.Value) (Value, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	switch x := v.Interface().(type) {
	case Value:
		return x, true
	case Printable:
		return Custom{x}, true
	case SimplePrintable:
		return Simple(x), true
	case Record:
		return Composite{x}, true
	case error:
		return Text(x.Error()), true
	case fmt.Stringer:
		if isInteger(v.Kind()) && v.Type().PkgPath() != "" {
			return Enum(x.String()), true
		}
		return Text(x.String()), true
	}
	return nil, false
}

// within converts v with conv unless v is already being converted further
// up, in which case it renders as marker.
func within(v reflect.Value, p path, marker string, conv func(path) Value) Value {
	ptr := v.Pointer()
	if _, ok := p[ptr]; ok {
		return Text(marker)
	}
	if p == nil {
		p = make(path)
	}
	p[ptr] = struct{}{}
	defer delete(p, ptr)
	return conv(p)
}

func fromList(v reflect.Value, p path) Value {
	out := make(Seq, v.Len())
	for i := range out {
		out[i] = fromReflect(v.Index(i), p)
	}
	return out
}

func fromMap(v reflect.Value, p path) Value {
	keys := v.MapKeys()
	slices.SortStableFunc(keys, compareKeys)
	if t := v.Type().Elem(); t.Kind() == reflect.Struct && t.NumField() == 0 {
		out := make(Set, len(keys))
		for i, k := range keys {
			out[i] = fromReflect(k, p)
		}
		return out
	}
	out := make(Map, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: fromReflect(k, p), Value: fromReflect(v.MapIndex(k), p)}
	}
	return out
}

// compareKeys orders map keys: numbers numerically, strings lexically,
// false before true, nil first, anything else by its fmt text.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	switch {
	case !a.IsValid() || !b.IsValid():
		return cmp.Compare(boolInt(a.IsValid()), boolInt(b.IsValid()))
	case a.Kind() != b.Kind():
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolInt(a.Bool()), boolInt(b.Bool()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	default:
		return cmp.Compare(keyText(a), keyText(b))
	}
}

func keyText(v reflect.Value) string {
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return v.String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// structRecord enumerates the fields of a struct through reflection. path
// holds the containers enclosing the struct when it was reached, so a struct
// value that contains itself through a map or slice still terminates.
type structRecord struct {
	v     reflect.Value
	path  path
	id    Identity
	hasID bool
}

func (r *structRecord) identity() (Identity, bool) { return r.id, r.hasID }

func (r *structRecord) TypeName() string {
	name := r.v.Type().Name()
	if name == "" {
		return "struct"
	}
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}

func (r *structRecord) Fields() ([]Field, error) {
	t := r.v.Type()
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		name, nested, skip := parseTag(sf)
		if skip {
			continue
		}
		fields = append(fields, Field{
			Name:   name,
			Value:  fromReflect(r.v.Field(i), r.path),
			Type:   TypeName(sf.Type),
			Nested: nested,
		})
	}
	return fields, nil
}

// parseTag reads the pprint struct tag: `pprint:"-"` skips the field,
// `pprint:"name"` renames it and the "nested" option marks it nested.
func parseTag(sf reflect.StructField) (name string, nested, skip bool) {
	tag, ok := sf.Tag.Lookup("pprint")
	if !ok {
		return sf.Name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "nested" {
			nested = true
		}
	}
	return name, nested, false
}

// TypeName renders the declared type t for type annotations. Slices and
// arrays render as Elem[], maps as map<K, V>, instantiated generics as
// Outer<A, B>, and named types without their package qualifier. Types with
// no readable name fall back to reflect's own descriptor.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if name := t.Name(); name != "" {
		return genericName(name)
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return TypeName(t.Elem()) + "[]"
	case reflect.Map:
		return "map<" + TypeName(t.Key()) + ", " + TypeName(t.Elem()) + ">"
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Chan:
		return "chan<" + TypeName(t.Elem()) + ">"
	default:
		return t.String()
	}
}

// typeString rewrites a Go type expression found inside a generic type name.
func typeString(s string) string {
	switch {
	case strings.HasPrefix(s, "[]"):
		return typeString(s[2:]) + "[]"
	case strings.HasPrefix(s, "["):
		if i := strings.IndexByte(s, ']'); i > 0 {
			return typeString(s[i+1:]) + "[]"
		}
	case strings.HasPrefix(s, "*"):
		return "*" + typeString(s[1:])
	case strings.HasPrefix(s, "map["):
		if j := closing(s, 3); j > 0 {
			return "map<" + typeString(s[4:j]) + ", " + typeString(s[j+1:]) + ">"
		}
		return s
	case strings.HasPrefix(s, "func("), strings.HasPrefix(s, "struct"), strings.HasPrefix(s, "interface"), strings.HasPrefix(s, "chan"):
		return s
	}
	return genericName(s)
}

// genericName turns pkg.Box[pkg.T,int] into Box<T, int>.
func genericName(s string) string {
	i := strings.IndexByte(s, '[')
	if i < 0 {
		return unqualify(s)
	}
	j := closing(s, i)
	if j != len(s)-1 {
		return s
	}
	args := splitTopLevel(s[i+1 : j])
	for k, a := range args {
		args[k] = typeString(strings.TrimSpace(a))
	}
	return unqualify(s[:i]) + "<" + strings.Join(args, ", ") + ">"
}

func unqualify(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// closing returns the index of the bracket matching the '[' at s[open], or
// -1 when it is unbalanced.
func closing(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
