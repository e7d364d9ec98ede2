package render

import (
	"bufio"
	"fmt"
	"unicode/utf8"

	"github.com/flarebyte/getitem/internal/catalog"
)

const hexDigits = "0123456789abcdef"

// writeCompactJSON writes v on a single line with ", " and ": " separators.
// Non-ASCII text is written as-is.
func writeCompactJSON(w *bufio.Writer, v catalog.Value) error {
	switch x := v.(type) {
	case catalog.Null, catalog.Bool, catalog.Number:
		_, err := w.WriteString(Text(x))
		return err
	case catalog.String:
		return writeJSONString(w, string(x))
	case catalog.List:
		if err := w.WriteByte('['); err != nil {
			return err
		}
		for i, it := range x {
			if i > 0 {
				if _, err := w.WriteString(", "); err != nil {
					return err
				}
			}
			if err := writeCompactJSON(w, it); err != nil {
				return err
			}
		}
		return w.WriteByte(']')
	case *catalog.Object:
		if err := w.WriteByte('{'); err != nil {
			return err
		}
		for i, k := range x.Keys() {
			if i > 0 {
				if _, err := w.WriteString(", "); err != nil {
					return err
				}
			}
			if err := writeJSONString(w, k); err != nil {
				return err
			}
			if _, err := w.WriteString(": "); err != nil {
				return err
			}
			val, _ := x.Get(k)
			if err := writeCompactJSON(w, val); err != nil {
				return err
			}
		}
		return w.WriteByte('}')
	}
	return fmt.Errorf("unsupported value %T", v)
}

func writeJSONString(w *bufio.Writer, s string) error {
	if err := w.WriteByte('"'); err != nil {
		return err
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			_, size := utf8.DecodeRuneInString(s[i:])
			if _, err := w.WriteString(s[i : i+size]); err != nil {
				return err
			}
			i += size
			continue
		}
		var err error
		switch c {
		case '"':
			_, err = w.WriteString(`\"`)
		case '\\':
			_, err = w.WriteString(`\\`)
		case '\n':
			_, err = w.WriteString(`\n`)
		case '\r':
			_, err = w.WriteString(`\r`)
		case '\t':
			_, err = w.WriteString(`\t`)
		case '\b':
			_, err = w.WriteString(`\b`)
		case '\f':
			_, err = w.WriteString(`\f`)
		default:
			if c < 0x20 {
				_, err = w.Write([]byte{'\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf]})
			} else {
				err = w.WriteByte(c)
			}
		}
		if err != nil {
			return err
		}
		i++
	}
	return w.WriteByte('"')
}
