package fmtstream

const hexDigits = "0123456789abcdef"

// escapes maps a byte to its two-character escape. Zero means the byte is
// either passed through or needs the \u00xx form.
var escapes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// passthrough reports whether b is copied unescaped into a JSON string.
// The check is per byte, so UTF-8 continuation bytes always pass.
func passthrough(b byte) bool {
	return b >= 0x20 && b != '"' && b != '\\'
}

// writeEscaped writes str with JSON string escaping, without the quotes.
func writeEscaped(s *Stream, str string) {
	start := 0
	for i := 0; i < len(str); i++ {
		b := str[i]
		if passthrough(b) {
			continue
		}
		if start < i {
			_, _ = s.WriteString(str[start:i])
		}
		if e := escapes[b]; e != 0 {
			_ = s.WriteByte('\\')
			_ = s.WriteByte(e)
		} else {
			_, _ = s.WriteString(`\u00`)
			_ = s.WriteByte(hexDigits[b>>4])
			_ = s.WriteByte(hexDigits[b&0xF])
		}
		start = i + 1
	}
	if start < len(str) {
		_, _ = s.WriteString(str[start:])
	}
}

// AppendQuoted appends str to dst as a quoted JSON string, escaping byte by
// byte exactly as [Quoted] does.
func AppendQuoted(dst []byte, str string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(str); i++ {
		b := str[i]
		switch {
		case passthrough(b):
			dst = append(dst, b)
		case escapes[b] != 0:
			dst = append(dst, '\\', escapes[b])
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
		}
	}
	return append(dst, '"')
}
