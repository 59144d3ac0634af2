// Package analysis runs poker draw simulations: it deals hands from a
// fresh deck, evaluates them and renders the comparison report.
package analysis

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/config"
	"github.com/lazharichir/showdown/hands"
	"github.com/lazharichir/showdown/report"
)

// Analysis is the outcome of a single simulation run.
type Analysis struct {
	ID        uuid.UUID
	CreatedAt time.Time
	HandSize  int
	Hands     []*hands.HandOfCards
	Report    string
}

// Run draws the configured number of hands from one fresh deck,
// evaluates them and renders the comparison report. A nil rng shuffles
// from a time-seeded source; pass a seeded source for deterministic
// draws.
func Run(cfg *config.Config, rng *rand.Rand, logger *slog.Logger) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil && cfg.Draw.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Draw.Seed))
	}

	deck := cards.NewDeck(rng)
	drawn := make([]*hands.HandOfCards, 0, cfg.Draw.Hands)
	for i := 0; i < cfg.Draw.Hands; i++ {
		stack, err := deck.DrawCards(cfg.Draw.HandSize)
		if err != nil {
			return nil, fmt.Errorf("drawing hand %d: %w", i+1, err)
		}

		hand, err := hands.NewHandOfCards(stack)
		if err != nil {
			return nil, fmt.Errorf("evaluating hand %d: %w", i+1, err)
		}

		logger.Debug("hand drawn", "hand", i+1, "description", hand.PokerHand.Description)
		drawn = append(drawn, hand)
	}

	pokerHands := make([]hands.PokerHand, len(drawn))
	for i, hand := range drawn {
		pokerHands[i] = hand.PokerHand
	}

	reportText, err := report.Comparison(pokerHands)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		HandSize:  cfg.Draw.HandSize,
		Hands:     drawn,
		Report:    reportText,
	}, nil
}

// WriteFile persists the analysis with its settings header.
func (a *Analysis) WriteFile(path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "POKER GAME ANALYSIS - %s\n", a.CreatedAt.Format("2006-01-02-15:04:05"))
	b.WriteString("\nThis file contains the analysis of a poker game, played with the following settings:")
	fmt.Fprintf(&b, "\n'%d players each receive a random %d-card poker hand picked from a single deck.'\n",
		len(a.Hands), a.HandSize)
	b.WriteString(a.Report)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing analysis file: %w", err)
	}
	return nil
}
