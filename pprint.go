package pprint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrMaxDepth          = errors.New("max depth exceeded")
	ErrUnsupportedValue  = errors.New("unsupported value")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var discardLogger = log.NewWithOptions(io.Discard, log.Options{})

// Formatter renders values using its Config. A zero Formatter uses
// [DefaultConfig]. A Formatter holds no traversal state, so one instance may
// be shared by concurrent callers.
type Formatter struct {
	Config Config
	// Logger receives debug events: revisits, truncation, depth limits.
	// Nil discards them.
	Logger *log.Logger
}

// New returns a Formatter for cfg.
func New(cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{Config: cfg}, nil
}

func (f *Formatter) config() Config {
	if f == nil || f.Config == (Config{}) {
		return DefaultConfig()
	}
	return f.Config
}

func (f *Formatter) logger() *log.Logger {
	if f == nil || f.Logger == nil {
		return discardLogger
	}
	return f.Logger
}

// Format renders v. Each call walks the graph with its own set of visited
// identities; nothing carries over between calls.
func (f *Formatter) Format(v Value) (string, error) {
	cfg := f.config()
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	w := &Walker{cfg: cfg, log: f.logger(), seen: make(tracker)}
	defer w.seen.reset()
	return w.Format(v)
}

// FormatContext renders v on a separate goroutine and gives up waiting when
// ctx is done. The abandoned computation runs to completion in the background.
func (f *Formatter) FormatContext(ctx context.Context, v Value) (string, error) {
	type result struct {
		s     string
		err   error
		panic any
	}
	done := make(chan result, 1)
	go func() {
		var r result
		defer func() {
			r.panic = recover()
			done <- r
		}()
		r.s, r.err = f.Format(v)
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.panic != nil {
			panic(r.panic)
		}
		return r.s, r.err
	}
}

// Fprint formats v and writes it to w followed by a newline.
func (f *Formatter) Fprint(w io.Writer, v Value) error {
	s, err := f.Format(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// Print formats v and writes it to standard output followed by a newline.
func (f *Formatter) Print(v Value) error {
	return f.Fprint(os.Stdout, v)
}

var std = &Formatter{}

// Format renders v with the default configuration.
func Format(v Value) (string, error) {
	return std.Format(v)
}

// Print writes v to standard output with the default configuration.
func Print(v Value) error {
	return std.Print(v)
}

// Sprint converts x with [Of] and formats it with the default configuration.
// In case of error it returns an empty string.
func Sprint(x any) string {
	s, err := std.Format(Of(x))
	if err != nil {
		return ""
	}
	return s
}

// Walker is the state of one format call. [Printable] values receive it to
// format their own sub-values within the same traversal.
type Walker struct {
	cfg   Config
	log   *log.Logger
	seen  tracker
	depth int
}

// Config returns the configuration of the current call.
func (w *Walker) Config() Config { return w.cfg }

// Format renders v as part of the current traversal.
func (w *Walker) Format(v Value) (string, error) {
	if s, ok := repr(v); ok {
		return s, nil
	}
	if w.cfg.MaxDepth > 0 && w.depth >= w.cfg.MaxDepth {
		w.log.Debug("depth limit reached", "max", w.cfg.MaxDepth)
		return "", fmt.Errorf("%w: %d", ErrMaxDepth, w.cfg.MaxDepth)
	}
	w.depth++
	defer func() { w.depth-- }()

	switch v := v.(type) {
	case Enum:
		return string(v), nil
	case Custom:
		if v.Printable == nil {
			return "null", nil
		}
		return v.PrettyFormat(w)
	case Map:
		return w.formatMap(v)
	case Seq:
		return w.formatIterable(v, "[", "]")
	case Set:
		return w.formatIterable(v, "{", "}")
	case Composite:
		if v.Record == nil {
			return "null", nil
		}
		return w.formatComposite(v.Record)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
