package hands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/showdown/cards"
)

// stackFrom builds a stack from space-separated card shorthand, e.g.
// "Ac Kc Qc Jc 10c".
func stackFrom(t *testing.T, shorthand string) cards.Stack {
	t.Helper()
	var stack cards.Stack
	for _, s := range strings.Fields(shorthand) {
		card, err := cards.CardFromString(s)
		require.NoError(t, err, "invalid shorthand %q", s)
		stack.AddCard(card)
	}
	return stack
}

func TestEvaluate_HandRecognition(t *testing.T) {
	tests := []struct {
		name          string
		hand          string
		wantDesc      string
		wantPrimary   HandRank
		wantSecondary Secondary
	}{
		{"Royal flush", "Ac Kc Qc Jc 10c", "Royal Flush", StraightFlush, ScalarScore(14)},
		{"Straight flush", "Kc Qc Jc 10c 9c", "Straight Flush, 9 to King", StraightFlush, ScalarScore(13)},
		{"Steel wheel", "Ad 2d 3d 4d 5d", "Straight Flush, 1 to 5", StraightFlush, ScalarScore(5)},
		{"Four of a kind", "Kc Kh Kd Ks Jh", "Four of a kind, Kings", FourOfAKind, ScalarScore(13)},
		{"Full house", "Kc Kh Kd Js Jh", "Full house, Kings and Jacks", FullHouse, PairScore(13, 11)},
		{"Flush", "Kc Qc Jc 7c 4c", "Flush, clubs", Flush, ScalarScore(13)},
		{"Straight", "4c 5h 6d 7s 8h", "Straight, 4 to 8", Straight, ScalarScore(8)},
		{"Ace-high straight", "10c Jh Qd Ks Ah", "Straight, 10 to Ace", Straight, ScalarScore(14)},
		{"Wheel", "Ac 2h 3d 4s 5h", "Straight, 1 to 5", Straight, ScalarScore(5)},
		{"Three of a kind", "Kc Kh Kd 7s Jh", "Three of a kind, Kings", ThreeOfAKind, ScalarScore(13)},
		{"Two pairs", "Ac Ah Kd Js Jh", "Two pairs, Aces and Jacks", TwoPairs, PairScore(14, 11)},
		{"Pair", "3c 3h 5d Js 7h", "Pair, 3s", OnePair, ScalarScore(3)},
		{"High card", "Ac Kh 5d Js 7h", "Ace high", HighCard, ScalarScore(14)},
		{"Ten high", "10c 8h 5d 4s 2h", "10 high", HighCard, ScalarScore(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := Evaluate(stackFrom(t, tt.hand))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, hand.Description)
			assert.Equal(t, tt.wantPrimary, hand.Score.Primary)
			assert.Equal(t, tt.wantSecondary, hand.Score.Secondary)
		})
	}
}

func TestEvaluate_HandCardsAndKickersCoverTheHand(t *testing.T) {
	// For every category, HandCards plus the kickers not already among
	// them must reproduce the original five cards.
	handsToCheck := []string{
		"Ac Kc Qc Jc 10c", // royal flush
		"Kc Kh Kd Ks Jh",  // four of a kind
		"Kc Kh Kd Js Jh",  // full house
		"Kc Qc Jc 7c 4c",  // flush
		"4c 5h 6d 7s 8h",  // straight
		"Kc Kh Kd 7s Jh",  // three of a kind
		"Ac Ah Kd Js Jh",  // two pairs
		"3c 3h 5d Js 7h",  // pair
		"Ac Kh 5d Js 7h",  // high card
	}

	for _, shorthand := range handsToCheck {
		t.Run(shorthand, func(t *testing.T) {
			stack := stackFrom(t, shorthand)
			hand, err := Evaluate(stack)
			require.NoError(t, err)

			covered := append(cards.Stack{}, hand.HandCards...)
			for _, kicker := range hand.Kickers {
				if !covered.Contains(kicker) {
					covered.AddCard(kicker)
				}
			}

			assert.Len(t, covered, 5, "HandCards and Kickers together must cover all 5 cards")
			for _, card := range stack {
				assert.True(t, covered.Contains(card), "card %s missing from evaluation", card)
			}
		})
	}
}

func TestEvaluate_GroupedKickersSortAceLow(t *testing.T) {
	// An ace left over from a rank group sorts by raw number, not
	// points, so it comes last among the kickers.
	hand, err := Evaluate(stackFrom(t, "Kc Kh Ad 5s 3h"))
	require.NoError(t, err)

	require.Equal(t, "Pair, Kings", hand.Description)
	require.Len(t, hand.Kickers, 3)
	assert.Equal(t, "5 of spades", hand.Kickers[0].String())
	assert.Equal(t, "3 of hearts", hand.Kickers[1].String())
	assert.Equal(t, "Ace of diamonds", hand.Kickers[2].String())
}

func TestEvaluate_FlushKickersSortAceHigh(t *testing.T) {
	// A flush keeps all five cards as kickers in points order, so the
	// ace leads.
	hand, err := Evaluate(stackFrom(t, "Ac Jc 8c 5c 3c"))
	require.NoError(t, err)

	require.Equal(t, "Flush, clubs", hand.Description)
	require.Len(t, hand.Kickers, 5)
	assert.Equal(t, "Ace of clubs", hand.Kickers[0].String())
}

func TestEvaluate_TwoPairsOrdersHigherPairFirst(t *testing.T) {
	hand, err := Evaluate(stackFrom(t, "Jc Jh Ad As Kh"))
	require.NoError(t, err)

	require.Equal(t, "Two pairs, Aces and Jacks", hand.Description)
	require.Len(t, hand.HandCards, 4)
	assert.Equal(t, cards.Ace, hand.HandCards[0].Number)
	assert.Equal(t, cards.Ace, hand.HandCards[1].Number)
	assert.Equal(t, cards.Jack, hand.HandCards[2].Number)
	assert.Equal(t, cards.Jack, hand.HandCards[3].Number)
	require.Len(t, hand.Kickers, 1)
	assert.Equal(t, cards.King, hand.Kickers[0].Number)
	require.Len(t, hand.SubHands, 2, "the two pairs remain as sub-hands")
}

func TestEvaluate_StraightFlushKeepsSubHands(t *testing.T) {
	hand, err := Evaluate(stackFrom(t, "Kc Qc Jc 10c 9c"))
	require.NoError(t, err)

	require.Len(t, hand.SubHands, 2)
	assert.Equal(t, Flush, hand.SubHands[0].Score.Primary)
	assert.Equal(t, Straight, hand.SubHands[1].Score.Primary)
	assert.Empty(t, hand.Kickers)
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	stack := stackFrom(t, "Kc Kh Kd Js Jh")

	first, err := Evaluate(stack)
	require.NoError(t, err)
	second, err := Evaluate(stack)
	require.NoError(t, err)

	assert.Equal(t, first, second, "evaluation is a pure function of its input")
}

func TestEvaluate_RejectsWrongHandSize(t *testing.T) {
	_, err := Evaluate(stackFrom(t, "Ac Kc Qc Jc"))
	assert.Error(t, err)

	_, err = Evaluate(stackFrom(t, "Ac Kc Qc Jc 10c 9c"))
	assert.Error(t, err)
}

func TestEvaluate_RejectsDuplicateCards(t *testing.T) {
	_, err := Evaluate(stackFrom(t, "Ac Ac Qc Jc 10c"))
	assert.Error(t, err)
}

func TestSameNumberCandidates_FiveOfAKindFailsLoudly(t *testing.T) {
	// Only reachable with malformed manual input; a single deck never
	// repeats a card.
	_, err := sameNumberCandidates(stackFrom(t, "Ac Ah Ad As Ac"))
	assert.ErrorIs(t, err, ErrFiveOfAKind)
}
