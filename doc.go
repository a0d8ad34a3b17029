// Package pprint renders arbitrary, possibly cyclic, value graphs as
// deterministic, indented, human-readable text.
//
// The central entry point is [Formatter.Format], which accepts a [Value].
// Values are a closed set of variants: primitives ([Null], [Bool], [Int],
// [Uint], [Float], [Char], [String]), [Enum], collections ([Seq], [Set],
// [Map]), self-rendering [Custom] values and [Composite] records. Use [Of]
// to convert ordinary Go values:
//
//	pprint.Print(pprint.Of(myStruct))
//
// # Layout
//
// Sequences and sets pack several items per line up to [Config.Width]
// columns. Short, uniform items stay compact:
//
//	[1, 2, 3]
//
// Long or uneven items are laid out one line group per indented line:
//
//	[
//	    "a rather long string", "another one",
//	    Point(x=1, y=2)
//	]
//
// Maps and records render on one line when they fit the width, one entry
// per line otherwise. Nested blocks longer than two lines carry a "|" rail
// on every line but the last when [Config.Rails] is set.
//
// # Records
//
// A record implements [Record], which names its type and enumerates its
// fields. Optional interfaces refine the rendering:
//
//   - [Identifiable]: explicit identity for cycle detection
//   - [Named]: displayed name override
//   - [Singleton]: render as the bare name
//
// Records reached a second time within one call render as their name, or as
// <Name#id (seen)> when [Config.WithIDs] is set, so cyclic graphs always
// terminate.
//
// # Custom rendering
//
// Implement [Printable] to render a value yourself. The [Walker] it receives
// formats sub-values within the same traversal. [SimplePrintable] suits
// renderings that need no recursion.
//
// # Documents
//
// [DecodeYAML] and [DecodeTOML] turn YAML, JSON and TOML documents into
// values, keeping key order.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig]: configuration out of range
//   - [ErrMaxDepth]: [Config.MaxDepth] exceeded
//   - [ErrUnsupportedValue]: value or document node that cannot be rendered
//   - [ErrUnsupportedFormat]: unknown document format
//
// Errors returned by [Record.Fields] and [Printable.PrettyFormat] abort the
// call and are returned wrapped with the record and field they came from.
package pprint
