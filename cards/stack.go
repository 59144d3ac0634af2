package cards

import (
	"sort"
	"strings"
)

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// AddCard adds a card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// Contains reports whether the stack holds the given card.
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Without returns the cards of the stack that are not in others.
func (s Stack) Without(others Stack) Stack {
	var remaining Stack
	for _, c := range s {
		if !others.Contains(c) {
			remaining = append(remaining, c)
		}
	}
	return remaining
}

// SortedByPointsDesc returns a copy of the stack ordered by points,
// highest first. The ace sorts high.
func (s Stack) SortedByPointsDesc() Stack {
	sorted := make(Stack, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points() > sorted[j].Points()
	})
	return sorted
}

// SortedByNumberDesc returns a copy of the stack ordered by raw card
// number, highest first. The ace sorts low.
func (s Stack) SortedByNumberDesc() Stack {
	sorted := make(Stack, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number > sorted[j].Number
	})
	return sorted
}

// String returns the display form of the stack
func (s Stack) String() string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
