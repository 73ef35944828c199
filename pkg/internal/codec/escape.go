package codec

import (
	"strings"
	"unicode/utf16"
)

const upperHex = "0123456789ABCDEF"

// Escape percent-encodes s the way the legacy ECMAScript escape() function does:
// ASCII letters, digits and @*_+-./ pass through, other UTF-16 code units below
// 0x100 become %XX and everything else becomes %uXXXX.
func Escape(s string) string {
	units := utf16.Encode([]rune(s))

	var b strings.Builder
	b.Grow(len(units) * 3)
	for _, u := range units {
		switch {
		case u < 0x80 && isUnreserved(byte(u)):
			b.WriteByte(byte(u))
		case u < 0x100:
			b.WriteByte('%')
			b.WriteByte(upperHex[u>>4])
			b.WriteByte(upperHex[u&0xF])
		default:
			b.WriteString("%u")
			b.WriteByte(upperHex[u>>12])
			b.WriteByte(upperHex[(u>>8)&0xF])
			b.WriteByte(upperHex[(u>>4)&0xF])
			b.WriteByte(upperHex[u&0xF])
		}
	}
	return b.String()
}

// Unescape reverses Escape. Malformed escape sequences are kept literally.
func Unescape(s string) string {
	src := utf16.Encode([]rune(s))
	units := make([]uint16, 0, len(src))

	for i := 0; i < len(src); i++ {
		if src[i] == '%' {
			if i+5 < len(src) && src[i+1] == 'u' {
				if v, ok := hexValue(src[i+2 : i+6]); ok {
					units = append(units, v)
					i += 5
					continue
				}
			}
			if i+2 < len(src) {
				if v, ok := hexValue(src[i+1 : i+3]); ok {
					units = append(units, v)
					i += 2
					continue
				}
			}
		}
		units = append(units, src[i])
	}
	return string(utf16.Decode(units))
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("@*_+-./", c) >= 0
}

func hexValue(digits []uint16) (uint16, bool) {
	var v uint16
	for _, d := range digits {
		v <<= 4
		switch {
		case d >= '0' && d <= '9':
			v |= d - '0'
		case d >= 'a' && d <= 'f':
			v |= d - 'a' + 10
		case d >= 'A' && d <= 'F':
			v |= d - 'A' + 10
		default:
			return 0, false
		}
	}
	return v, true
}
