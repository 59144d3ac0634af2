package cards

import (
	"fmt"
	"unicode/utf8"

	"github.com/lazharichir/showdown/language"
)

// Suit represents a card suit, named as it reads in card displays.
type Suit string

const (
	Spades   Suit = "spade"
	Hearts   Suit = "heart"
	Diamonds Suit = "diamond"
	Clubs    Suit = "club"
)

// Face card numbers. The ace is stored as 1; its high comparison value
// comes from Points.
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card represents a playing card. Cards are immutable values identified
// by their (number, suit) pair.
type Card struct {
	Number int
	Suit   Suit
}

// Points returns the card's ace-high comparison value: 14 for the ace,
// the face number for every other card.
func (c Card) Points() int {
	if c.Number == Ace {
		return 14
	}
	return c.Number
}

// String returns the display form of a card, e.g. "Ace of clubs".
func (c Card) String() string {
	return fmt.Sprintf("%s of %ss", language.CardNumber(c.Number, false), c.Suit)
}

// Equals checks if two cards are the same card
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Number == other.Number
}

// CardFromString creates a card from a shorthand representation
// e.g., "10♠" or "10s" or "10S" -> Card{Number: 10, Suit: Spades}
func CardFromString(s string) (Card, error) {
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// Suit symbols like ♠ are multi-byte, so split on the last rune.
	_, suitLen := utf8.DecodeLastRuneInString(s)
	value, suitMark := s[:len(s)-suitLen], s[len(s)-suitLen:]

	var suit Suit
	switch suitMark {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", suitMark)
	}

	var number int
	switch value {
	case "A":
		number = Ace
	case "K":
		number = King
	case "Q":
		number = Queen
	case "J":
		number = Jack
	case "10":
		number = 10
	case "9":
		number = 9
	case "8":
		number = 8
	case "7":
		number = 7
	case "6":
		number = 6
	case "5":
		number = 5
	case "4":
		number = 4
	case "3":
		number = 3
	case "2":
		number = 2
	default:
		return Card{}, fmt.Errorf("invalid card value: %s", value)
	}

	return Card{Number: number, Suit: suit}, nil
}
