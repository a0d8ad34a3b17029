package pprint

import (
	"fmt"
	"strings"
)

func (w *Walker) formatComposite(r Record) (string, error) {
	typeName := r.TypeName()
	name := typeName
	if n, ok := r.(Named); ok {
		name = n.PrettyName()
	}
	singleton := false
	if s, ok := r.(Singleton); ok {
		singleton = s.Singleton()
	}

	id, hasID := IdentityOf(r)
	bare := !w.cfg.WithIDs || singleton || !hasID
	if !bare {
		name += "#" + id.String()
	}

	if hasID && !w.seen.note(typeName, id) {
		w.log.Debug("revisited record", "type", typeName, "id", id)
		if bare {
			return name, nil
		}
		return "<" + name + " (seen)>", nil
	}
	if singleton {
		return name, nil
	}

	fields, err := r.Fields()
	if err != nil {
		return "", fmt.Errorf("%s: %w", typeName, err)
	}

	texts := make([]string, 0, len(fields))
	total := 0
	for _, f := range fields {
		null := isNull(f.Value)
		if w.cfg.SkipNull && null {
			continue
		}
		if w.cfg.SkipNested && f.Nested && !null {
			continue
		}
		s, err := w.Format(f.Value)
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", typeName, f.Name, err)
		}
		text := f.Name + "=" + s
		if w.cfg.WithTypes {
			text = f.Name + ": " + declaredType(f) + "=" + s
		}
		texts = append(texts, text)
		total += textWidth(text)
	}

	switch {
	case len(texts) == 0:
		return name, nil
	case len(texts) == 1 || textWidth(name)+3+total+2*len(texts) <= w.cfg.Width:
		return name + "(" + strings.Join(texts, ", ") + ")", nil
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("(\n")
	for i, text := range texts {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(indentLines(text, w.cfg.Indent, true, w.cfg.Rails))
	}
	sb.WriteString("\n)")
	return sb.String(), nil
}

func isNull(v Value) bool {
	switch v := v.(type) {
	case nil, Null:
		return true
	case Custom:
		return v.Printable == nil
	case Composite:
		return v.Record == nil
	default:
		return false
	}
}

// declaredType returns the field's declared type, or the name of its
// runtime variant when none was declared.
func declaredType(f Field) string {
	if f.Type != "" {
		return f.Type
	}
	switch v := f.Value.(type) {
	case nil, Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Uint:
		return "Uint"
	case Float:
		return "Float"
	case Char:
		return "Char"
	case String:
		return "String"
	case Enum:
		return "Enum"
	case Seq:
		return "Seq"
	case Set:
		return "Set"
	case Map:
		return "Map"
	case Composite:
		if v.Record != nil {
			return v.TypeName()
		}
		return "Null"
	default:
		return "Custom"
	}
}
