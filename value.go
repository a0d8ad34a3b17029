package pprint

// Value is a node of the graph being formatted. The set of variants is
// closed: Null, Bool, Int, Uint, Float, Char, String, Enum, Custom, Seq, Set,
// Map, and Composite. Use [Of] to convert ordinary Go values.
type Value interface {
	isValue()
}

// Null is the absent value. It renders as "null".
type Null struct{}

// Bool renders as True or False.
type Bool bool

// Int is a signed integer leaf.
type Int int64

// Uint is an unsigned integer leaf.
type Uint uint64

// Float is a floating point leaf.
type Float float64

// Char is a single character leaf. It renders unquoted.
type Char rune

// String renders quoted, with backslash, double quote, CR and LF escaped.
type String string

// Enum is a named constant. It renders as its name.
type Enum string

// Seq is an ordered sequence. It renders between square brackets.
type Seq []Value

// Set is an unordered collection rendered between braces in the order given.
type Set []Value

// Map is a list of key/value pairs rendered in the order given.
type Map []Entry

// Entry is a single key/value pair of a [Map].
type Entry struct {
	Key   Value
	Value Value
}

// Custom wraps a value that renders itself.
type Custom struct {
	Printable
}

// Composite wraps a record-like value whose fields are enumerated by the
// record itself.
type Composite struct {
	Record
}

func (Null) isValue()      {}
func (Bool) isValue()      {}
func (Int) isValue()       {}
func (Uint) isValue()      {}
func (Float) isValue()     {}
func (Char) isValue()      {}
func (String) isValue()    {}
func (Enum) isValue()      {}
func (Seq) isValue()       {}
func (Set) isValue()       {}
func (Map) isValue()       {}
func (Custom) isValue()    {}
func (Composite) isValue() {}

// --- Custom rendering ---

// Printable renders itself. The walker formats sub-values within the same
// traversal, so cycles through a Printable are still detected.
type Printable interface {
	PrettyFormat(w *Walker) (string, error)
}

// SimplePrintable renders itself without recursing into the printer.
type SimplePrintable interface {
	PrettyString() string
}

// PrintableFunc adapts a function to [Printable].
type PrintableFunc func(w *Walker) (string, error)

// PrettyFormat calls f(w).
func (f PrintableFunc) PrettyFormat(w *Walker) (string, error) { return f(w) }

// Simple wraps a self-contained renderer as a [Custom] value.
func Simple(s SimplePrintable) Value {
	return Custom{PrintableFunc(func(*Walker) (string, error) {
		return s.PrettyString(), nil
	})}
}

// Text returns a [Custom] value that renders as s verbatim.
func Text(s string) Value {
	return Custom{PrintableFunc(func(*Walker) (string, error) { return s, nil })}
}

// --- Records ---

// Record enumerates the fields of a composite value. Fields must return the
// same fields in the same order for the duration of one format call.
type Record interface {
	TypeName() string
	Fields() ([]Field, error)
}

// Field is one named field of a [Record].
type Field struct {
	Name  string
	Value Value
	// Type is the declared type shown when type annotations are enabled.
	Type string
	// Nested marks a field holding an inner record, dropped when
	// Config.SkipNested is set.
	Nested bool
}

// --- Optional record interfaces ---

// Identifiable supplies an explicit identity for cycle detection. Without
// it, the identity is derived from the record's pointer.
type Identifiable interface {
	Identity() Identity
}

// Named overrides the displayed type name.
// Default: Record.TypeName. With Config.WithIDs the identity suffix is
// appended to the overridden name, not to the type name.
type Named interface {
	PrettyName() string
}

// Singleton marks records with a single instance. Singletons render as their
// bare name with no fields and no identity suffix.
type Singleton interface {
	Singleton() bool
}
