package hands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/language"
)

const handSize = 5

// ErrFiveOfAKind signals five cards of the same number, which cannot
// happen with a correctly built single deck.
var ErrFiveOfAKind = errors.New("five of a kind: the hand cannot come from a single deck")

// Evaluate determines the best-scoring poker hand for exactly five
// distinct cards. It generates one candidate per recognizable
// sub-category and keeps the strongest.
func Evaluate(hand cards.Stack) (PokerHand, error) {
	if len(hand) != handSize {
		return PokerHand{}, fmt.Errorf("a poker hand takes exactly %d cards, got %d", handSize, len(hand))
	}
	if err := checkDistinct(hand); err != nil {
		return PokerHand{}, err
	}

	sorted := hand.SortedByPointsDesc()

	candidates, err := sameNumberCandidates(sorted)
	if err != nil {
		return PokerHand{}, err
	}
	if flush, ok := flushCandidate(sorted); ok {
		candidates = append(candidates, flush)
	}
	if straight, ok := straightCandidate(sorted); ok {
		candidates = append(candidates, straight)
	}
	if combined, ok := combinationCandidate(sorted, candidates); ok {
		candidates = append(candidates, combined)
	}

	best, _, err := OrderHands(candidates)
	if err != nil {
		return PokerHand{}, err
	}
	return best, nil
}

func checkDistinct(hand cards.Stack) error {
	for i, card := range hand {
		for _, other := range hand[i+1:] {
			if card.Equals(other) {
				return fmt.Errorf("duplicate card in hand: %s", card)
			}
		}
	}
	return nil
}

// sameNumberCandidates partitions the hand by card number and produces
// one candidate per group: four of a kind, three of a kind, pair, or a
// single high card. Kickers are the remaining cards sorted by raw
// number, so an unused ace sorts low.
func sameNumberCandidates(sorted cards.Stack) ([]PokerHand, error) {
	var order []int
	groups := make(map[int]cards.Stack)
	for _, card := range sorted {
		if _, seen := groups[card.Number]; !seen {
			order = append(order, card.Number)
		}
		groups[card.Number] = append(groups[card.Number], card)
	}

	var candidates []PokerHand
	for _, number := range order {
		group := groups[number]
		kickers := sorted.Without(group).SortedByNumberDesc()
		points := group[0].Points()

		var description string
		var primary HandRank
		switch len(group) {
		case 5:
			return nil, ErrFiveOfAKind
		case 4:
			description = fmt.Sprintf("Four of a kind, %s", language.CardNumber(number, true))
			primary = FourOfAKind
		case 3:
			description = fmt.Sprintf("Three of a kind, %s", language.CardNumber(number, true))
			primary = ThreeOfAKind
		case 2:
			description = fmt.Sprintf("Pair, %s", language.CardNumber(number, true))
			primary = OnePair
		default:
			description = fmt.Sprintf("%s high", language.CardNumber(number, false))
			primary = HighCard
		}

		candidates = append(candidates, PokerHand{
			Description: description,
			Score:       Score{Primary: primary, Secondary: ScalarScore(points)},
			HandCards:   group,
			Kickers:     kickers,
		})
	}
	return candidates, nil
}

// flushCandidate checks whether all five cards share a suit. A flush
// keeps all five cards as its own kickers so that equal-suited flushes
// fall through to card-by-card comparison.
func flushCandidate(sorted cards.Stack) (PokerHand, bool) {
	suit := sorted[0].Suit
	for _, card := range sorted[1:] {
		if card.Suit != suit {
			return PokerHand{}, false
		}
	}

	return PokerHand{
		Description: fmt.Sprintf("Flush, %ss", suit),
		Score:       Score{Primary: Flush, Secondary: ScalarScore(sorted[0].Points())},
		HandCards:   sorted,
		Kickers:     sorted,
	}, true
}

// straightCandidate checks for five consecutive points values. An
// ace-high hand that misses is retried with the ace counting as 1 for
// the wheel (A-2-3-4-5), which scores as a 5-high straight.
func straightCandidate(sorted cards.Stack) (PokerHand, bool) {
	points := make([]int, len(sorted))
	for i, card := range sorted {
		points[i] = card.Points()
	}

	if consecutiveDesc(points) {
		low := language.CardNumber(sorted[len(sorted)-1].Points(), false)
		high := language.CardNumber(sorted[0].Points(), false)
		return PokerHand{
			Description: fmt.Sprintf("Straight, %s to %s", low, high),
			Score:       Score{Primary: Straight, Secondary: ScalarScore(sorted[0].Points())},
			HandCards:   sorted,
		}, true
	}

	if sorted[0].Points() == 14 {
		numbers := make([]int, len(sorted))
		for i, card := range sorted {
			numbers[i] = card.Number
		}
		sort.Sort(sort.Reverse(sort.IntSlice(numbers)))
		if consecutiveDesc(numbers) {
			return PokerHand{
				Description: "Straight, 1 to 5",
				Score:       Score{Primary: Straight, Secondary: ScalarScore(5)},
				HandCards:   sorted,
			}, true
		}
	}

	return PokerHand{}, false
}

func consecutiveDesc(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]-1 {
			return false
		}
	}
	return true
}

// combinationCandidate builds the hands formed out of lesser candidates:
// two pairs, full houses and straight or royal flushes.
func combinationCandidate(sorted cards.Stack, candidates []PokerHand) (PokerHand, bool) {
	var pairs, threes, straights, flushes []PokerHand
	for _, candidate := range candidates {
		switch candidate.Score.Primary {
		case OnePair:
			pairs = append(pairs, candidate)
		case ThreeOfAKind:
			threes = append(threes, candidate)
		case Straight:
			straights = append(straights, candidate)
		case Flush:
			flushes = append(flushes, candidate)
		}
	}

	switch {
	case len(pairs) == 2:
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].Score.Secondary.High > pairs[j].Score.Secondary.High
		})
		handCards := append(cards.Stack{}, pairs[0].HandCards...)
		handCards = append(handCards, pairs[1].HandCards...)
		return PokerHand{
			Description: fmt.Sprintf("Two pairs, %s and %s",
				language.CardNumber(pairs[0].Score.Secondary.High, true),
				language.CardNumber(pairs[1].Score.Secondary.High, true)),
			Score:     Score{Primary: TwoPairs, Secondary: PairScore(pairs[0].Score.Secondary.High, pairs[1].Score.Secondary.High)},
			HandCards: handCards,
			Kickers:   sorted.Without(handCards),
			SubHands:  pairs,
		}, true

	case len(threes) == 1 && len(pairs) == 1:
		handCards := append(cards.Stack{}, threes[0].HandCards...)
		handCards = append(handCards, pairs[0].HandCards...)
		return PokerHand{
			Description: fmt.Sprintf("Full house, %s and %s",
				language.CardNumber(threes[0].Score.Secondary.High, true),
				language.CardNumber(pairs[0].Score.Secondary.High, true)),
			Score:     Score{Primary: FullHouse, Secondary: PairScore(threes[0].Score.Secondary.High, pairs[0].Score.Secondary.High)},
			HandCards: handCards,
			SubHands:  []PokerHand{threes[0], pairs[0]},
		}, true

	case len(straights) == 1 && len(flushes) == 1:
		description := "Royal Flush"
		if straights[0].Score.Secondary.High != 14 {
			description = strings.Replace(straights[0].Description, "Straight,", "Straight Flush,", 1)
		}
		return PokerHand{
			Description: description,
			Score:       Score{Primary: StraightFlush, Secondary: straights[0].Score.Secondary},
			HandCards:   sorted,
			SubHands:    []PokerHand{flushes[0], straights[0]},
		}, true
	}

	return PokerHand{}, false
}
