// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package santa computes Secret Santa assignments from a participant list and a seed.

# Seeded Randomness

A seed string is hashed (djb2 over UTF-16 code units) into a 32-bit number which
initialises a Mulberry32 generator:

	rnd := santa.NewSeededRandom("christmas2024")
	x := rnd.Float64() // [0, 1)

Every step uses uint32 arithmetic, so a seed produces the same sequence as the
browser implementation that generated existing links.

# Assignments

GenerateAssignments shuffles a copy of the participants (Fisher-Yates) and then
runs a single forward repair pass that swaps any self-assignment with the next
slot:

	assignments, err := santa.GenerateAssignments([]string{"Alice", "Bob", "Carol"}, "xmas")
	if errors.Is(err, santa.ErrInsufficientParticipants) {
		// ask for more names
	}

With unique names the result is always a derangement. Repeated names are the
caller's concern; with them the single pass can leave a giver assigned to an
identical name, and that output is kept as-is so old links stay reproducible.

# Lookup

	a, err := santa.FindAssignment(assignments, "Bob")
*/
package santa
