// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package santa

import (
	"errors"
	"fmt"
)

// MinParticipants is the smallest group GenerateAssignments accepts
const MinParticipants = 3

var (
	ErrInsufficientParticipants = errors.New("need at least 3 participants")
	ErrNoAssignment             = errors.New("no assignment found for this participant")
)

// Assignment is one giver -> receiver pair
type Assignment struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

// Shuffle returns a Fisher-Yates shuffled copy of items
func Shuffle(items []string, rnd *Random) []string {
	shuffled := make([]string, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// GenerateAssignments maps every participant to a receiver, deterministically in seed.
// The participants slice is not modified.
func GenerateAssignments(participants []string, seed string) ([]Assignment, error) {
	if len(participants) < MinParticipants {
		return nil, fmt.Errorf("got %d: %w", len(participants), ErrInsufficientParticipants)
	}

	rnd := NewSeededRandom(seed)
	receivers := Shuffle(participants, rnd)

	// One forward pass only. Existing links depend on this exact order.
	n := len(participants)
	for i := 0; i < n; i++ {
		if participants[i] == receivers[i] {
			next := (i + 1) % n
			receivers[i], receivers[next] = receivers[next], receivers[i]
		}
	}

	assignments := make([]Assignment, n)
	for i, giver := range participants {
		assignments[i] = Assignment{Giver: giver, Receiver: receivers[i]}
	}
	return assignments, nil
}

// FindAssignment returns the first assignment whose giver is exactly name
func FindAssignment(assignments []Assignment, name string) (Assignment, error) {
	for _, a := range assignments {
		if a.Giver == name {
			return a, nil
		}
	}
	return Assignment{}, ErrNoAssignment
}
