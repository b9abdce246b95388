// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package encoder

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrInvalidURL     = errors.New("invalid URL: missing user or admin parameter")
)

// Link query parameter names
const (
	ParamData  = "data"
	ParamAdmin = "admin"
	ParamUser  = "user"
)

// Mode is what a link opens
type Mode string

const (
	ModeNone        Mode = ""
	ModeParticipant Mode = "participant"
	ModeAdmin       Mode = "admin"
)

// Params holds the link parameters. User is fully decoded.
type Params struct {
	Data  string
	Admin string
	User  string
}

// Mode classifies the link. A link with data but neither user nor admin is invalid.
func (p Params) Mode() (Mode, error) {
	switch {
	case p.Data == "":
		return ModeNone, nil
	case p.User != "":
		return ModeParticipant, nil
	case p.Admin != "":
		return ModeAdmin, nil
	}
	return ModeNone, ErrInvalidURL
}

// AdminURL returns baseURL with data and admin=true set
func AdminURL(baseURL, data string) (string, error) {
	return withParams(baseURL, [][2]string{
		{ParamData, data},
		{ParamAdmin, "true"},
	})
}

// ParticipantURL returns baseURL with data and the participant's name set
func ParticipantURL(baseURL, data, name string) (string, error) {
	return withParams(baseURL, [][2]string{
		{ParamData, data},
		{ParamUser, encodeURIComponent(name)},
	})
}

// ParseParams reads link parameters from a raw query string
func ParseParams(rawQuery string) (Params, error) {
	pairs := parseForm(strings.TrimPrefix(rawQuery, "?"))

	params := Params{
		Data:  lookup(pairs, ParamData),
		Admin: lookup(pairs, ParamAdmin),
	}
	if user := lookup(pairs, ParamUser); user != "" {
		decoded, err := url.PathUnescape(user)
		if err != nil {
			return Params{}, fmt.Errorf("failed to decode user: %w", err)
		}
		params.User = decoded
	}
	return params, nil
}

func withParams(baseURL string, set [][2]string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	pairs := parseForm(u.RawQuery)
	for _, kv := range set {
		pairs = setPair(pairs, kv[0], kv[1])
	}
	u.RawQuery = serializeForm(pairs)

	return u.String(), nil
}

// setPair replaces the first pair named name and drops the rest, or appends
func setPair(pairs [][2]string, name, value string) [][2]string {
	out := pairs[:0:0]
	found := false
	for _, kv := range pairs {
		if kv[0] != name {
			out = append(out, kv)
			continue
		}
		if !found {
			out = append(out, [2]string{name, value})
			found = true
		}
	}
	if !found {
		out = append(out, [2]string{name, value})
	}
	return out
}

func lookup(pairs [][2]string, name string) string {
	for _, kv := range pairs {
		if kv[0] == name {
			return kv[1]
		}
	}
	return ""
}

// parseForm splits an application/x-www-form-urlencoded string keeping order
func parseForm(raw string) [][2]string {
	var pairs [][2]string
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		pairs = append(pairs, [2]string{formUnescape(name), formUnescape(value)})
	}
	return pairs
}

func formUnescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "+", " ")
	}
	return v
}

func serializeForm(pairs [][2]string) string {
	var b strings.Builder
	for i, kv := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		writeEscaped(&b, kv[0], isFormSafe, true)
		b.WriteByte('=')
		writeEscaped(&b, kv[1], isFormSafe, true)
	}
	return b.String()
}

func encodeURIComponent(s string) string {
	var b strings.Builder
	writeEscaped(&b, s, isURIComponentSafe, false)
	return b.String()
}

const upperHex = "0123456789ABCDEF"

func writeEscaped(b *strings.Builder, s string, safe func(byte) bool, spaceAsPlus bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case safe(c):
			b.WriteByte(c)
		case c == ' ' && spaceAsPlus:
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0xF])
		}
	}
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// the form-urlencoded set leaves only *-._ unescaped
func isFormSafe(c byte) bool {
	return isAlnum(c) || c == '*' || c == '-' || c == '.' || c == '_'
}

func isURIComponentSafe(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
