package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lazharichir/showdown/analysis"
	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/config"
	"github.com/lazharichir/showdown/hands"
	"github.com/lazharichir/showdown/report"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server exposes poker draw analyses over HTTP and WebSocket.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewServer creates a server running simulations with the given
// configuration.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, logger: logger}
}

// HandResponse represents an evaluated hand in API responses
type HandResponse struct {
	Description string   `json:"description"`
	Cards       []string `json:"cards"`
	Kickers     []string `json:"kickers,omitempty"`
}

// AnalysisResponse represents a finished simulation run in API responses
type AnalysisResponse struct {
	ID        string         `json:"id"`
	CreatedAt string         `json:"createdAt"`
	Hands     []HandResponse `json:"hands"`
	Report    string         `json:"report"`
}

// EvaluateRequest represents hands submitted for comparison, each hand
// a list of card shorthands like "As" or "10♥"
type EvaluateRequest struct {
	Hands [][]string `json:"hands"`
}

// EvaluateResponse represents the comparison of submitted hands
type EvaluateResponse struct {
	Hands  []HandResponse `json:"hands"`
	Report string         `json:"report"`
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyses", s.handleNewAnalysis)
	mux.HandleFunc("/hands/evaluate", s.handleEvaluate)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start listens on addr and serves analyses until the listener fails.
func (s *Server) Start(addr string) error {
	s.logger.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleNewAnalysis runs a fresh simulation and returns the result.
func (s *Server) handleNewAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := analysis.Run(s.cfg, nil, s.logger)
	if err != nil {
		s.logger.Error("analysis failed", "error", err)
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	s.respondJSON(w, http.StatusOK, analysisResponse(result))
}

// handleEvaluate compares caller-supplied hands.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Hands) == 0 {
		http.Error(w, "No hands to evaluate", http.StatusBadRequest)
		return
	}

	pokerHands := make([]hands.PokerHand, 0, len(req.Hands))
	for i, shorthands := range req.Hands {
		var stack cards.Stack
		for _, shorthand := range shorthands {
			card, err := cards.CardFromString(shorthand)
			if err != nil {
				http.Error(w, fmt.Sprintf("Hand %d: %v", i+1, err), http.StatusBadRequest)
				return
			}
			stack.AddCard(card)
		}

		hand, err := hands.NewHandOfCards(stack)
		if err != nil {
			http.Error(w, fmt.Sprintf("Hand %d: %v", i+1, err), http.StatusBadRequest)
			return
		}
		pokerHands = append(pokerHands, hand.PokerHand)
	}

	reportText, err := report.Comparison(pokerHands)
	if err != nil {
		s.logger.Error("comparison failed", "error", err)
		http.Error(w, "Comparison failed", http.StatusInternalServerError)
		return
	}

	resp := EvaluateResponse{Report: reportText}
	for _, hand := range pokerHands {
		resp.Hands = append(resp.Hands, handResponse(hand))
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// handleWebSocket streams a simulation to the client: one hand_dealt
// event per drawn hand, then the analysis_result.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	result, err := analysis.Run(s.cfg, nil, s.logger)
	if err != nil {
		s.logger.Error("analysis failed", "error", err)
		_ = conn.WriteJSON(map[string]string{"type": "error", "message": "analysis failed"})
		return
	}

	for i, hand := range result.Hands {
		event := map[string]any{
			"type":        "hand_dealt",
			"hand":        i + 1,
			"description": hand.PokerHand.Description,
			"cards":       cardNames(hand.Cards),
		}
		if err := conn.WriteJSON(event); err != nil {
			s.logger.Error("websocket write failed", "error", err)
			return
		}
	}

	final := map[string]any{
		"type":   "analysis_result",
		"id":     result.ID.String(),
		"report": result.Report,
	}
	if err := conn.WriteJSON(final); err != nil {
		s.logger.Error("websocket write failed", "error", err)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response failed", "error", err)
	}
}

func analysisResponse(result *analysis.Analysis) AnalysisResponse {
	resp := AnalysisResponse{
		ID:        result.ID.String(),
		CreatedAt: result.CreatedAt.Format("2006-01-02-15:04:05"),
		Report:    result.Report,
	}
	for _, hand := range result.Hands {
		resp.Hands = append(resp.Hands, handResponse(hand.PokerHand))
	}
	return resp
}

func handResponse(hand hands.PokerHand) HandResponse {
	return HandResponse{
		Description: hand.Description,
		Cards:       cardNames(hand.HandCards),
		Kickers:     cardNames(hand.Kickers),
	}
}

func cardNames(stack cards.Stack) []string {
	names := make([]string, len(stack))
	for i, card := range stack {
		names[i] = card.String()
	}
	return names
}
