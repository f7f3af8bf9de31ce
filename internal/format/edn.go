package format

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes an EDN rendering of v.
//
// Values go through encoding/json first so struct tags decide field names.
// Map keys become kebab-case keywords (labelText -> :label-text, _hints -> :hints).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var sb strings.Builder
	e := ednWriter{sb: &sb, pretty: pretty}
	e.value(x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

type ednWriter struct {
	sb     *strings.Builder
	pretty bool
}

func (e ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case bool:
		e.sb.WriteString(strconv.FormatBool(t))
	case string:
		e.sb.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			e.sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			e.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		e.open('[', len(t) == 0)
		for i, it := range t {
			e.sep(i, depth+1)
			e.value(it, depth+1)
		}
		e.close(']', len(t) == 0, depth)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.open('{', len(t) == 0)
		for i, k := range keys {
			e.sep(i, depth+1)
			e.sb.WriteByte(':')
			e.sb.WriteString(keyword(k))
			e.sb.WriteByte(' ')
			e.value(t[k], depth+1)
		}
		e.close('}', len(t) == 0, depth)
	}
}

func (e ednWriter) open(c byte, empty bool) {
	e.sb.WriteByte(c)
	if e.pretty && !empty {
		e.sb.WriteByte('\n')
	}
}

func (e ednWriter) sep(i, depth int) {
	if e.pretty {
		if i > 0 {
			e.sb.WriteByte('\n')
		}
		e.sb.WriteString(strings.Repeat("  ", depth))
		return
	}
	if i > 0 {
		e.sb.WriteByte(' ')
	}
}

func (e ednWriter) close(c byte, empty bool, depth int) {
	if e.pretty && !empty {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", depth))
	}
	e.sb.WriteByte(c)
}

func keyword(k string) string {
	k = strings.TrimLeft(strings.TrimSpace(k), "_")
	var sb strings.Builder
	for i, r := range k {
		switch {
		case r == ' ' || r == '_':
			sb.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
