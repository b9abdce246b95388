// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package encoder

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// The obfuscated text is arbitrary UTF-16, lone surrogates included, which a Go
// string cannot hold. These helpers read and write it as a JSON string the same
// way a browser's JSON.stringify and JSON.parse do.

var errBadJSONString = errors.New("malformed JSON string")

const hexDigits = "0123456789abcdef"

// xorUnits XORs text with key, cycling the key. An empty key returns text unchanged.
func xorUnits(text, key []uint16) []uint16 {
	if len(key) == 0 {
		return text
	}
	out := make([]uint16, len(text))
	for i, u := range text {
		out[i] = u ^ key[i%len(key)]
	}
	return out
}

// units is UTF-16 text that marshals as a JSON string
type units []uint16

func (u units) MarshalJSON() ([]byte, error) {
	return appendJSONString(make([]byte, 0, len(u)+2), u), nil
}

func appendJSONString(dst []byte, s []uint16) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = appendUnitEscape(dst, c)
		case utf16.IsSurrogate(rune(c)):
			if c < 0xDC00 && i+1 < len(s) && s[i+1] >= 0xDC00 && s[i+1] <= 0xDFFF {
				dst = utf8.AppendRune(dst, utf16.DecodeRune(rune(c), rune(s[i+1])))
				i++
				continue
			}
			dst = appendUnitEscape(dst, c)
		default:
			dst = utf8.AppendRune(dst, rune(c))
		}
	}
	return append(dst, '"')
}

func appendUnitEscape(dst []byte, c uint16) []byte {
	return append(dst, '\\', 'u',
		hexDigits[c>>12&0xF], hexDigits[c>>8&0xF], hexDigits[c>>4&0xF], hexDigits[c&0xF])
}

// parseJSONString decodes a quoted JSON string into UTF-16 units,
// keeping lone surrogate escapes intact.
func parseJSONString(data []byte) ([]uint16, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return nil, errBadJSONString
	}
	body := data[1 : len(data)-1]

	out := make([]uint16, 0, len(body))
	for i := 0; i < len(body); {
		b := body[i]
		switch {
		case b == '\\':
			if i+1 >= len(body) {
				return nil, errBadJSONString
			}
			i++
			switch body[i] {
			case '"', '\\', '/':
				out = append(out, uint16(body[i]))
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'u':
				if i+4 >= len(body) {
					return nil, errBadJSONString
				}
				v, ok := parseHex4(body[i+1 : i+5])
				if !ok {
					return nil, errBadJSONString
				}
				out = append(out, v)
				i += 4
			default:
				return nil, errBadJSONString
			}
			i++
		case b < 0x20 || b == '"':
			return nil, errBadJSONString
		case b < utf8.RuneSelf:
			out = append(out, uint16(b))
			i++
		default:
			r, size := utf8.DecodeRune(body[i:])
			if r == utf8.RuneError && size == 1 {
				return nil, errBadJSONString
			}
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				out = append(out, uint16(r1), uint16(r2))
			} else {
				out = append(out, uint16(r))
			}
			i += size
		}
	}
	return out, nil
}

func parseHex4(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			v |= uint16(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
