// Package report renders hand comparisons as human-readable text.
package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/hands"
	"github.com/lazharichir/showdown/language"
)

const delimiter = "\n-<>-<>-<>-<>-<>-<>-<>-<>-"

// Internal consistency violations between ranking and reporting. Either
// of these firing means a bug in the ranking/formatting correspondence,
// never a bad draw.
var (
	ErrNoDrawMatch   = errors.New("ranking signals a draw, but no hands equal to the best hand were found")
	ErrNoKickerMatch = errors.New("ranking signals a kicker decision, but no hand shares the best hand's score")
)

// Comparison ranks the poker hands and describes the result as a
// multi-block report: a win or draw headline, then one block per hand
// listing its cards. Kickers that decided the outcome are tagged with
// "(kicker)"; cards that did not contribute appear in brackets.
func Comparison(pokerHands []hands.PokerHand) (string, error) {
	bestHand, kickerIndex, err := hands.OrderHands(pokerHands)
	if err != nil {
		return "", err
	}

	bestIndex := -1
	var bestIndices []int

	var winStatement string
	if kickerIndex == hands.UnbrokenTie {
		// A draw: find every hand matching the best one through its
		// kickers.
		for i, hand := range pokerHands {
			if hand.Score.Compare(bestHand.Score) == 0 && kickerPointsMatch(hand, bestHand) {
				bestIndices = append(bestIndices, i)
			}
		}
		if len(bestIndices) < 2 {
			return "", ErrNoDrawMatch
		}

		ordinals := make([]string, len(bestIndices))
		for i, index := range bestIndices {
			ordinals[i] = language.Ordinal(index + 1)
		}
		winStatement = fmt.Sprintf("Draw between the %s hand (%s)", language.Join(ordinals), bestHand)
	} else {
		for i, hand := range pokerHands {
			if hand.Score.Compare(bestHand.Score) != 0 {
				continue
			}
			if kickerIndex > hands.UnbrokenTie && !kickerPointsMatch(hand, bestHand) {
				continue
			}
			bestIndex = i
		}
		winStatement = fmt.Sprintf("The %s hand wins with %s.", language.OrdinalWord(bestIndex+1), bestHand)
	}

	if kickerIndex > hands.UnbrokenTie {
		// A winner by kickers: every hand sharing the winning score
		// shows which of its kickers were compared.
		for i, hand := range pokerHands {
			if hand.Score.Compare(bestHand.Score) == 0 {
				bestIndices = append(bestIndices, i)
			}
		}
		if len(bestIndices) < 2 {
			return "", ErrNoKickerMatch
		}
	}

	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteString("\n" + winStatement)

	for i, hand := range pokerHands {
		decisive := slices.Contains(bestIndices, i)

		// How many leading kickers counted towards the outcome: all of
		// them for a draw, the compared prefix for a kicker win.
		kickerLimit := 0
		if decisive {
			if kickerIndex == hands.UnbrokenTie {
				kickerLimit = len(hand.Kickers)
			} else if kickerIndex > hands.UnbrokenTie {
				kickerLimit = min(kickerIndex, len(hand.Kickers))
			}
		}

		b.WriteString(delimiter)
		fmt.Fprintf(&b, "\n%s hand: %s", language.Ordinal(i+1), hand.Description)
		if i == bestIndex {
			b.WriteString("\nWinning hand")
		} else if decisive && kickerIndex == hands.UnbrokenTie {
			b.WriteString("\nHand included in the winning draw")
		}
		b.WriteString("\nThe hand includes the following cards:")

		printed := make(cards.Stack, 0, len(hand.HandCards)+len(hand.Kickers))
		for _, card := range hand.HandCards {
			tag := ""
			if decisive && kickerIndex > hands.UnbrokenTie && hand.Kickers[:kickerLimit].Contains(card) {
				// The card plays a double role in the main hand and as
				// a kicker.
				tag = " (kicker)"
			}
			fmt.Fprintf(&b, "\n - %s%s", card, tag)
			printed = append(printed, card)
		}

		for _, kicker := range hand.Kickers[:kickerLimit] {
			if printed.Contains(kicker) {
				continue
			}
			fmt.Fprintf(&b, "\n - %s (kicker)", kicker)
			printed = append(printed, kicker)
		}

		for _, kicker := range hand.Kickers {
			if printed.Contains(kicker) {
				continue
			}
			fmt.Fprintf(&b, "\n(- %s)", kicker)
		}
	}

	b.WriteString(delimiter)
	return b.String(), nil
}

// kickerPointsMatch reports whether the hand's kicker points form the
// same multiset as the best hand's.
func kickerPointsMatch(hand, best hands.PokerHand) bool {
	points := make([]int, len(hand.Kickers))
	for i, kicker := range hand.Kickers {
		points[i] = kicker.Points()
	}

	for _, kicker := range best.Kickers {
		index := slices.Index(points, kicker.Points())
		if index >= 0 {
			points = slices.Delete(points, index, index+1)
		}
	}
	return len(points) == 0
}
