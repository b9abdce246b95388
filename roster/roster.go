// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package roster turns free-form participant input into the list that
// santa.GenerateAssignments expects, and validates a create request.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bombfork/open-secret-santa/santa"
)

const (
	MinParticipants = santa.MinParticipants
	MaxParticipants = 50
)

var (
	ErrTooFewParticipants  = fmt.Errorf("at least %d participants are required: %w", MinParticipants, santa.ErrInsufficientParticipants)
	ErrTooManyParticipants = fmt.Errorf("at most %d participants are allowed", MaxParticipants)
	ErrSeedRequired        = errors.New("seed is required")
)

// Parse reads one name per line, trimming whitespace and dropping
// blank lines and repeats (first occurrence wins)
func Parse(text string) []string {
	return Clean(strings.Split(text, "\n"))
}

// Clean applies the same trimming and de-duplication to an existing list
func Clean(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Validate checks a parsed participant list and seed.
// The admin password is optional and not checked here.
func Validate(participants []string, seed string) error {
	if len(participants) < MinParticipants {
		return ErrTooFewParticipants
	}
	if len(participants) > MaxParticipants {
		return ErrTooManyParticipants
	}
	if strings.TrimSpace(seed) == "" {
		return ErrSeedRequired
	}
	return nil
}
