package hands

import (
	"errors"
	"sort"

	"github.com/lazharichir/showdown/cards"
)

// Kicker index values returned by OrderHands alongside the winner. A
// positive index k means kickers up to position k (1-based) were
// compared, with position k the first to differ; the report formatter
// uses it as a slice boundary.
const (
	// NoKickersNeeded means the winner was decided by category and
	// secondary score alone.
	NoKickersNeeded = -2
	// UnbrokenTie means the top hands match all the way through their
	// kickers.
	UnbrokenTie = -1
)

// ErrNoHands is returned when there is nothing to order.
var ErrNoHands = errors.New("no hands to order")

// OrderHands determines the best hand of a list and how it was decided.
// The input order is the seat order and is preserved among equal hands,
// so the earliest of tied seats comes out first.
func OrderHands(handList []PokerHand) (PokerHand, int, error) {
	if len(handList) == 0 {
		return PokerHand{}, 0, ErrNoHands
	}

	kickerIndex := NoKickersNeeded

	sorted := make([]PokerHand, len(handList))
	copy(sorted, handList)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score.Primary > sorted[j].Score.Primary
	})

	var highest []PokerHand
	for _, hand := range sorted {
		if hand.Score.Primary == sorted[0].Score.Primary {
			highest = append(highest, hand)
		}
	}

	sort.SliceStable(highest, func(i, j int) bool {
		return highest[i].Score.Secondary.Compare(highest[j].Score.Secondary) > 0
	})

	if len(highest) > 1 && highest[0].Score.Secondary.Compare(highest[1].Score.Secondary) == 0 {
		// The secondary scoring was the same, so the kickers decide.
		var tied []PokerHand
		for _, hand := range highest {
			if hand.Score.Secondary.Compare(highest[0].Score.Secondary) == 0 {
				tied = append(tied, hand)
			}
		}
		highest, kickerIndex = orderByKickers(tied)
	}

	return highest[0], kickerIndex, nil
}

// orderByKickers orders score-tied hands by their kicker sequences and
// reports the 1-based position where the top two diverge, or
// UnbrokenTie when they never do. Kicker sequences are expected to have
// equal lengths; with malformed input the comparison stops at the
// shorter sequence.
func orderByKickers(tied []PokerHand) ([]PokerHand, int) {
	sort.SliceStable(tied, func(i, j int) bool {
		return compareKickers(tied[i].Kickers, tied[j].Kickers) > 0
	})

	kickerIndex := UnbrokenTie
	top, runnerUp := tied[0].Kickers, tied[1].Kickers
	for i, kicker := range top {
		if i >= len(runnerUp) {
			break
		}
		if runnerUp[i].Points() != kicker.Points() {
			kickerIndex = i + 1
			break
		}
	}
	return tied, kickerIndex
}

// compareKickers compares kicker sequences position by position on
// points. A longer sequence beats a shorter one matching its prefix.
func compareKickers(a, b cards.Stack) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Points() != b[i].Points() {
			if a[i].Points() > b[i].Points() {
				return 1
			}
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}
