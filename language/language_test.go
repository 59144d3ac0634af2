package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number int
		plural bool
		want   string
	}{
		{"Ace from raw number", 1, false, "Ace"},
		{"Ace from points value", 14, false, "Ace"},
		{"Aces plural", 1, true, "Aces"},
		{"Jack", 11, false, "Jack"},
		{"Queen", 12, false, "Queen"},
		{"King", 13, false, "King"},
		{"Kings plural", 13, true, "Kings"},
		{"Numeral", 10, false, "10"},
		{"Numeral plural", 3, true, "3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardNumber(tt.number, tt.plural))
		})
	}
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", Ordinal(1))
	assert.Equal(t, "2nd", Ordinal(2))
	assert.Equal(t, "3rd", Ordinal(3))
	assert.Equal(t, "4th", Ordinal(4))
	assert.Equal(t, "11th", Ordinal(11))
}

func TestOrdinalWord(t *testing.T) {
	assert.Equal(t, "first", OrdinalWord(1))
	assert.Equal(t, "second", OrdinalWord(2))
	assert.Equal(t, "tenth", OrdinalWord(10))
	assert.Equal(t, "twentieth", OrdinalWord(20))
	assert.Equal(t, "21st", OrdinalWord(21), "beyond the word table the suffixed form is used")
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "1st", Join([]string{"1st"}))
	assert.Equal(t, "1st and 2nd", Join([]string{"1st", "2nd"}))
	assert.Equal(t, "1st, 2nd, and 3rd", Join([]string{"1st", "2nd", "3rd"}))
}
