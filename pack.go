package pprint

import (
	"strings"
)

// Items no wider than compactMaxWidth whose widths deviate less than
// compactMaxStddev stay in compact layout.
const (
	compactMaxWidth  = 10
	compactMaxStddev = 5.0
)

func (w *Walker) formatIterable(items []Value, open, close string) (string, error) {
	// One item past the cap is rendered so the "..." marker is placed
	// exactly where that item would have gone.
	n := len(items)
	if w.cfg.MaxItems < n {
		n = w.cfg.MaxItems + 1
	}
	texts := make([]string, n)
	for i, item := range items[:n] {
		s, err := w.Format(item)
		if err != nil {
			return "", err
		}
		texts[i] = s
	}
	if len(items) > w.cfg.MaxItems {
		w.log.Debug("truncated collection", "items", len(items), "max", w.cfg.MaxItems)
	}

	lines, sizes, count := pack(texts, w.cfg.Width, w.cfg.MultiPerLine, w.cfg.MaxItems)
	if count == 0 {
		return open + close, nil
	}
	if compact(sizes) {
		return open + strings.Join(lines, "\n") + close, nil
	}

	var sb strings.Builder
	sb.WriteString(open)
	sb.WriteString("\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(indentLines(line, w.cfg.Indent, true, w.cfg.Rails))
	}
	sb.WriteString("\n")
	sb.WriteString(close)
	return sb.String(), nil
}

// pack greedily groups texts into lines of at most width columns, keeping
// input order. Closed lines end with a comma. Texts wider than width, or
// every text when multi is false, start a line of their own. Once maxItems
// texts are placed, the next one is replaced by "..." and packing stops.
// sizes holds the width of every text examined; count is the number placed.
func pack(texts []string, width int, multi bool, maxItems int) (lines []string, sizes []float64, count int) {
	var (
		sb     strings.Builder
		bufLen int
	)
	closeLine := func() {
		sb.WriteString(",")
		lines = append(lines, sb.String())
		sb.Reset()
		bufLen = 0
	}
	for _, text := range texts {
		size := textWidth(text)
		sizes = append(sizes, float64(size))

		if size > width || !multi {
			if sb.Len() > 0 {
				closeLine()
			}
		} else if sb.Len() > 0 && bufLen+size > width {
			closeLine()
		}

		if sb.Len() > 0 {
			sb.WriteString(", ")
			bufLen += 2
		}
		if count >= maxItems {
			sb.WriteString("...")
			bufLen += 3
			break
		}
		sb.WriteString(text)
		bufLen += size
		count++
	}
	if sb.Len() > 0 {
		lines = append(lines, sb.String())
	}
	return lines, sizes, count
}

// compact reports whether items of the given widths are short and uniform
// enough to be laid out without per-line indentation.
func compact(sizes []float64) bool {
	if len(sizes) <= 1 {
		return true
	}
	for _, s := range sizes {
		if s > compactMaxWidth {
			return false
		}
	}
	return stddev(sizes) < compactMaxStddev
}
