package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when drawing from an exhausted deck.
var ErrEmptyDeck = errors.New("the deck is empty")

// Deck is an ordered, shuffled sequence of 52 unique cards. Cards leave
// the deck one at a time through Draw; a deck is never refilled.
type Deck struct {
	cards Stack
}

// NewDeck creates a full 52-card deck shuffled once with rng. A nil rng
// falls back to a time-seeded source.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var deck Stack
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	for number := Ace; number <= King; number++ {
		for _, suit := range suits {
			deck.AddCard(Card{Number: number, Suit: suit})
		}
	}

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return &Deck{cards: deck}
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Draw removes and returns the top card of the deck.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DrawCards draws count cards from the top of the deck.
func (d *Deck) DrawCards(count int) (Stack, error) {
	drawn := make(Stack, 0, count)
	for i := 0; i < count; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		drawn = append(drawn, card)
	}
	return drawn, nil
}
