package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Number: Ace, Suit: Spades}, false},
		{"Ace of Spades lowercase", "As", Card{Number: Ace, Suit: Spades}, false},
		{"Ace of Spades uppercase", "AS", Card{Number: Ace, Suit: Spades}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Number: 10, Suit: Hearts}, false},
		{"Ten of Hearts lowercase", "10h", Card{Number: 10, Suit: Hearts}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Number: Queen, Suit: Diamonds}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Number: Queen, Suit: Diamonds}, false},
		{"Two of Clubs Unicode", "2♣", Card{Number: 2, Suit: Clubs}, false},
		{"Two of Clubs uppercase", "2C", Card{Number: 2, Suit: Clubs}, false},

		// All values for a single suit
		{"King of Hearts", "Kh", Card{Number: King, Suit: Hearts}, false},
		{"Jack of Hearts", "Jh", Card{Number: Jack, Suit: Hearts}, false},
		{"Nine of Hearts", "9h", Card{Number: 9, Suit: Hearts}, false},
		{"Eight of Hearts", "8h", Card{Number: 8, Suit: Hearts}, false},
		{"Seven of Hearts", "7h", Card{Number: 7, Suit: Hearts}, false},
		{"Six of Hearts", "6h", Card{Number: 6, Suit: Hearts}, false},
		{"Five of Hearts", "5h", Card{Number: 5, Suit: Hearts}, false},
		{"Four of Hearts", "4h", Card{Number: 4, Suit: Hearts}, false},
		{"Three of Hearts", "3h", Card{Number: 3, Suit: Hearts}, false},

		// Invalid inputs
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid value", "11S", Card{}, true},
		{"Invalid format", "XX", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Number too large", "100S", Card{}, true},
		{"Input with trailing space", "AS ", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestCard_Points(t *testing.T) {
	assert.Equal(t, 14, Card{Number: Ace, Suit: Clubs}.Points(), "the ace always compares high")
	assert.Equal(t, 13, Card{Number: King, Suit: Clubs}.Points())
	assert.Equal(t, 10, Card{Number: 10, Suit: Hearts}.Points())
	assert.Equal(t, 2, Card{Number: 2, Suit: Spades}.Points())
}

func TestCard_String(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Number: Ace, Suit: Clubs}, "Ace of clubs"},
		{Card{Number: 10, Suit: Hearts}, "10 of hearts"},
		{Card{Number: King, Suit: Spades}, "King of spades"},
		{Card{Number: Queen, Suit: Diamonds}, "Queen of diamonds"},
		{Card{Number: Jack, Suit: Hearts}, "Jack of hearts"},
		{Card{Number: 2, Suit: Clubs}, "2 of clubs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.String())
	}
}

func TestCard_Equals(t *testing.T) {
	card := Card{Number: Ace, Suit: Clubs}

	assert.True(t, card.Equals(Card{Number: Ace, Suit: Clubs}))
	assert.False(t, card.Equals(Card{Number: Ace, Suit: Hearts}), "same number, different suit")
	assert.False(t, card.Equals(Card{Number: King, Suit: Clubs}), "same suit, different number")
}
