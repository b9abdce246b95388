// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package encoder

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bombfork/open-secret-santa/santa"
)

var ErrInvalidData = errors.New("invalid data format")

// Payload is the decoded content of a link
type Payload struct {
	Seed         string
	Assignments  []santa.Assignment
	PasswordHash string
	// Legacy is set for links whose assignments were stored in clear
	// and whose password hash is carried by the admin parameter.
	Legacy bool
}

type encodedPayload struct {
	Seed         string `json:"seed"`
	Assignments  units  `json:"assignments"`
	PasswordHash string `json:"passwordHash"`
}

type decodedPayload struct {
	Seed         string          `json:"seed"`
	Assignments  json.RawMessage `json:"assignments"`
	PasswordHash string          `json:"passwordHash"`
}

// Encode builds the base64 data blob for assignments
func Encode(assignments []santa.Assignment, seed, adminPassword string) (string, error) {
	if assignments == nil {
		assignments = []santa.Assignment{}
	}

	plain, err := marshal(assignments)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assignments: %w", err)
	}

	text := utf16.Encode([]rune(string(plain)))
	key := utf16.Encode([]rune(seed))

	blob, err := marshal(encodedPayload{
		Seed:         seed,
		Assignments:  units(xorUnits(text, key)),
		PasswordHash: HashPassword(adminPassword),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decode reverses Encode. Every failure is reported as ErrInvalidData.
func Decode(data string) (*Payload, error) {
	raw, err := decodeBase64(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: payload is not UTF-8", ErrInvalidData)
	}

	var wire decodedPayload
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	payload := &Payload{Seed: wire.Seed, PasswordHash: wire.PasswordHash}

	field := bytes.TrimSpace(wire.Assignments)
	switch {
	case len(field) == 0:
		return nil, fmt.Errorf("%w: missing assignments", ErrInvalidData)

	case field[0] == '[':
		payload.Legacy = true
		if err := json.Unmarshal(field, &payload.Assignments); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}

	case field[0] == '"':
		text, err := parseJSONString(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		plain := xorUnits(text, utf16.Encode([]rune(wire.Seed)))
		if err := json.Unmarshal([]byte(string(utf16.Decode(plain))), &payload.Assignments); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}

	default:
		return nil, fmt.Errorf("%w: unexpected assignments value", ErrInvalidData)
	}

	if payload.Assignments == nil {
		payload.Assignments = []santa.Assignment{}
	}
	return payload, nil
}

// marshal writes JSON the way a browser does: no HTML escaping, no trailing newline
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// decodeBase64 accepts padded or unpadded standard base64 and ignores line breaks.
// A space is read as '+', which is what an unescaped '+' becomes in a query string.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '+'
		case '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s)

	if s == "" {
		return nil, errors.New("empty data")
	}
	if strings.HasSuffix(s, "=") {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}
