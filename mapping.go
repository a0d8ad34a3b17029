package pprint

import (
	"strings"
)

// formatMap renders m on one line when it fits the column width, otherwise
// one entry per line.
func (w *Walker) formatMap(m Map) (string, error) {
	n := len(m)
	if w.cfg.MaxItems < n {
		n = w.cfg.MaxItems + 1
	}
	items := make([]string, 0, n)
	for i, e := range m {
		if i >= w.cfg.MaxItems {
			w.log.Debug("truncated map", "entries", len(m), "max", w.cfg.MaxItems)
			items = append(items, "...")
			break
		}
		k, err := w.Format(e.Key)
		if err != nil {
			return "", err
		}
		v, err := w.Format(e.Value)
		if err != nil {
			return "", err
		}
		items = append(items, k+": "+v)
	}

	joined := strings.Join(items, ", ")
	if textWidth(joined) <= w.cfg.Width {
		return "{" + joined + "}", nil
	}
	indent := w.cfg.Indent
	return "{\n" + indent + strings.Join(items, ",\n"+indent) + "\n}", nil
}
