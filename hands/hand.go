// Package hands evaluates five-card poker hands and ranks them against
// each other.
package hands

import (
	"strings"

	"github.com/lazharichir/showdown/cards"
)

// HandRank represents the strength of a poker hand category
type HandRank int

const (
	HighCard HandRank = iota + 1
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Secondary is the tie-break value within a hand category: a single
// scalar for most categories, a high/low pair for two pairs and full
// houses.
type Secondary struct {
	High int
	Low  int
	Pair bool
}

// ScalarScore builds a single-valued secondary score.
func ScalarScore(value int) Secondary {
	return Secondary{High: value}
}

// PairScore builds a two-valued secondary score, higher value first.
func PairScore(high, low int) Secondary {
	return Secondary{High: high, Low: low, Pair: true}
}

// Compare orders secondary scores: 1 if s beats other, -1 if other wins,
// 0 on an exact tie. Pair scores compare (high, low) lexicographically.
func (s Secondary) Compare(other Secondary) int {
	if s.High != other.High {
		if s.High > other.High {
			return 1
		}
		return -1
	}
	if s.Pair && other.Pair && s.Low != other.Low {
		if s.Low > other.Low {
			return 1
		}
		return -1
	}
	return 0
}

// Score is the comparable strength of a poker hand: the category rank
// plus the in-category tie-break value.
type Score struct {
	Primary   HandRank
	Secondary Secondary
}

// Compare orders scores by category first, secondary score second.
func (s Score) Compare(other Score) int {
	if s.Primary != other.Primary {
		if s.Primary > other.Primary {
			return 1
		}
		return -1
	}
	return s.Secondary.Compare(other.Secondary)
}

// PokerHand is the evaluation of a hand of cards: the best-scoring
// combination it contains, the cards forming it, and the kickers left
// over for tie-breaking. HandCards and Kickers together always cover the
// original five cards.
type PokerHand struct {
	Description string
	Score       Score
	HandCards   cards.Stack
	Kickers     cards.Stack
	SubHands    []PokerHand
}

func (h PokerHand) String() string {
	return h.Description
}

// HandOfCards is a drawn hand together with its poker evaluation,
// computed once at construction.
type HandOfCards struct {
	Cards     cards.Stack
	PokerHand PokerHand
}

// NewHandOfCards sorts the given cards by points, highest first, and
// evaluates their best poker hand.
func NewHandOfCards(stack cards.Stack) (*HandOfCards, error) {
	sorted := stack.SortedByPointsDesc()
	pokerHand, err := Evaluate(sorted)
	if err != nil {
		return nil, err
	}
	return &HandOfCards{Cards: sorted, PokerHand: pokerHand}, nil
}

func (h *HandOfCards) String() string {
	var b strings.Builder
	b.WriteString("Hand contains:\n-----------")
	for _, card := range h.Cards {
		b.WriteString("\n" + card.String())
	}
	return b.String()
}
