package value

import (
	"unicode/utf8"

	"github.com/arloliu/jsonxl/internal/pool"
)

const hexDigits = "0123456789abcdef"

// Marshal returns the compact JSON encoding of v.
func Marshal(v Value) []byte {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	encodeValue(bb, v, "", 0)

	return bb.Clone()
}

// MarshalIndent returns the JSON encoding of v indented with two spaces per
// level, laid out like JSON.stringify(v, null, 2).
func MarshalIndent(v Value) []byte {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	encodeValue(bb, v, "  ", 0)

	return bb.Clone()
}

// encodeValue writes v to bb. An empty indent selects the compact form.
func encodeValue(bb *pool.ByteBuffer, v Value, indent string, depth int) {
	switch v.kind {
	case KindNull:
		_, _ = bb.WriteString("null")
	case KindBool:
		if v.b {
			_, _ = bb.WriteString("true")
		} else {
			_, _ = bb.WriteString("false")
		}
	case KindNumber:
		_, _ = bb.WriteString(v.s)
	case KindString:
		writeString(bb, v.s)
	case KindArray:
		if len(v.arr) == 0 {
			_, _ = bb.WriteString("[]")
			return
		}
		_ = bb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				_ = bb.WriteByte(',')
			}
			newline(bb, indent, depth+1)
			encodeValue(bb, e, indent, depth+1)
		}
		newline(bb, indent, depth)
		_ = bb.WriteByte(']')
	case KindObject:
		if v.obj.Len() == 0 {
			_, _ = bb.WriteString("{}")
			return
		}
		_ = bb.WriteByte('{')
		for i, k := range v.obj.keys {
			if i > 0 {
				_ = bb.WriteByte(',')
			}
			newline(bb, indent, depth+1)
			writeString(bb, k)
			_ = bb.WriteByte(':')
			if indent != "" {
				_ = bb.WriteByte(' ')
			}
			encodeValue(bb, v.obj.vals[i], indent, depth+1)
		}
		newline(bb, indent, depth)
		_ = bb.WriteByte('}')
	}
}

func newline(bb *pool.ByteBuffer, indent string, depth int) {
	if indent == "" {
		return
	}
	_ = bb.WriteByte('\n')
	for range depth {
		_, _ = bb.WriteString(indent)
	}
}

// writeString writes s as a quoted JSON string, escaping only what
// JSON.stringify escapes.
func writeString(bb *pool.ByteBuffer, s string) {
	_ = bb.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			_, _ = bb.WriteString(s[start:i])
			switch c {
			case '"', '\\':
				_ = bb.WriteByte('\\')
				_ = bb.WriteByte(c)
			case '\b':
				_, _ = bb.WriteString(`\b`)
			case '\f':
				_, _ = bb.WriteString(`\f`)
			case '\n':
				_, _ = bb.WriteString(`\n`)
			case '\r':
				_, _ = bb.WriteString(`\r`)
			case '\t':
				_, _ = bb.WriteString(`\t`)
			default:
				_, _ = bb.WriteString(`\u00`)
				_ = bb.WriteByte(hexDigits[c>>4])
				_ = bb.WriteByte(hexDigits[c&0xF])
			}
			i++
			start = i

			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			_, _ = bb.WriteString(s[start:i])
			_, _ = bb.WriteString("\ufffd")
			i += size
			start = i

			continue
		}
		i += size
	}
	_, _ = bb.WriteString(s[start:])
	_ = bb.WriteByte('"')
}
