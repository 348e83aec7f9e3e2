// Package betting drives card sessions with betting rounds and a showdown.
// Each participant's escrowed stake is their chip cap for the hand; betting
// decides who is still contesting at showdown, the pot itself never moves
// until settlement.
package betting

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/paulhankin/poker"

	"github.com/nolanpeet/stakehouse/internal/dice"
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

const (
	// ActionCheck passes when nothing is owed
	ActionCheck = rules.ActionType("check")

	// ActionBet opens the round's betting
	ActionBet = rules.ActionType("bet")

	// ActionCall matches the current bet
	ActionCall = rules.ActionType("call")

	// ActionRaise increases the current bet, re-opening the round
	ActionRaise = rules.ActionType("raise")

	// ActionFold leaves the hand
	ActionFold = rules.ActionType("fold")
)

const (
	// SubPhaseBetting is a live betting round
	SubPhaseBetting = "betting"

	// SubPhaseShowdown is the terminal hand comparison
	SubPhaseShowdown = "showdown"

	deckSize  = 52
	holeCards = 2
	boardSize = 5
)

// state is the module's shared data, stored on the session
type state struct {
	// Hole maps user ID to two card indexes
	Hole map[string][]int `json:"hole"`

	// Board is the five community card indexes
	Board []int `json:"board"`

	// Revealed is how many board cards are face up (0, 3, 4, 5)
	Revealed int `json:"revealed"`

	// Committed maps user ID to total chips bet across all rounds
	Committed map[string]int64 `json:"committed"`

	// Round maps user ID to chips bet in the current round
	Round map[string]int64 `json:"round"`

	// CurrentBet is the amount each contester must match this round
	CurrentBet int64 `json:"current_bet"`

	// Acted maps user ID to whether they have acted since the last raise
	Acted map[string]bool `json:"acted"`
}

// Config contains the dependencies for the betting module
type Config struct {
	// Roller shuffles the deck
	Roller dice.Roller
}

// Module implements rules.Module for betting-round card sessions
type Module struct {
	roller dice.Roller
}

// New creates a new betting module
func New(cfg *Config) (*Module, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, fmt.Errorf("roller cannot be nil")
	}

	return &Module{roller: cfg.Roller}, nil
}

// Kind reports which session kind this module drives
func (m *Module) Kind() models.SessionKind {
	return models.KindBettingRound
}

// TurnBased reports that betting enforces round-robin turns
func (m *Module) TurnBased() bool {
	return true
}

// Init shuffles and deals. Hole cards and the full board are fixed up
// front; the board is revealed between rounds.
func (m *Module) Init(s *models.Session) error {
	perm := m.roller.Perm(deckSize)

	st := &state{
		Hole:      make(map[string][]int),
		Committed: make(map[string]int64),
		Round:     make(map[string]int64),
		Acted:     make(map[string]bool),
	}

	next := 0
	for _, p := range s.ActiveParticipants() {
		st.Hole[p.UserID] = []int{perm[next], perm[next+1]}
		next += holeCards
	}
	st.Board = perm[next : next+boardSize]

	s.SubPhase = SubPhaseBetting
	return saveState(s, st)
}

// LegalActions lists the moves open to the participant whose turn it is
func (m *Module) LegalActions(s *models.Session) []rules.Action {
	st, err := loadState(s)
	if err != nil || s.TurnIndex >= len(s.Participants) {
		return nil
	}

	userID := s.Participants[s.TurnIndex].UserID
	owed := st.CurrentBet - st.Round[userID]

	if owed <= 0 {
		return []rules.Action{
			{Type: ActionCheck},
			{Type: ActionBet},
			{Type: ActionFold},
		}
	}

	return []rules.Action{
		{Type: ActionCall},
		{Type: ActionRaise},
		{Type: ActionFold},
	}
}

// Apply executes one betting move
func (m *Module) Apply(s *models.Session, userID string, a rules.Action) (*rules.StepResult, error) {
	p := s.Participant(userID)
	if p == nil || p.Status != models.ParticipantStatusActive {
		return nil, rules.ErrNotParticipant
	}

	if s.SubPhase != SubPhaseBetting {
		return nil, rules.ErrIllegalAction
	}

	st, err := loadState(s)
	if err != nil {
		return nil, err
	}

	owed := st.CurrentBet - st.Round[userID]
	remaining := p.Stake - st.Committed[userID]

	switch a.Type {
	case ActionCheck:
		if owed > 0 {
			return nil, rules.ErrIllegalAction
		}
		st.Acted[userID] = true

	case ActionBet:
		if st.CurrentBet != 0 || a.Amount <= 0 || a.Amount > remaining {
			return nil, rules.ErrIllegalAction
		}
		st.CurrentBet = a.Amount
		m.commit(st, userID, a.Amount)
		m.reopenRound(s, st, userID)

	case ActionCall:
		if owed <= 0 {
			return nil, rules.ErrIllegalAction
		}
		// A short stack calls all-in for whatever is left
		pay := owed
		if pay > remaining {
			pay = remaining
		}
		m.commit(st, userID, pay)
		st.Acted[userID] = true

	case ActionRaise:
		if st.CurrentBet == 0 || a.Amount <= 0 || owed+a.Amount > remaining {
			return nil, rules.ErrIllegalAction
		}
		st.CurrentBet += a.Amount
		m.commit(st, userID, owed+a.Amount)
		m.reopenRound(s, st, userID)

	case ActionFold:
		p.Status = models.ParticipantStatusEliminated

	default:
		return nil, rules.ErrIllegalAction
	}

	if last := m.lastContester(s); last != nil {
		return &rules.StepResult{
			Outcome: &models.Outcome{
				Kind:    models.OutcomeProportional,
				Winners: []string{last.UserID},
				Detail:  "all other players folded",
			},
		}, nil
	}

	if m.roundClosed(s, st) {
		if st.Revealed >= boardSize {
			outcome, err := m.showdown(s, st)
			if err != nil {
				return nil, err
			}
			s.SubPhase = SubPhaseShowdown
			if err := saveState(s, st); err != nil {
				return nil, err
			}
			return &rules.StepResult{Outcome: outcome}, nil
		}
		m.revealNext(st)
	}

	if err := saveState(s, st); err != nil {
		return nil, err
	}

	return &rules.StepResult{AdvanceTurn: true}, nil
}

// OnTimeout declines to pick a winner mid-hand; the engine cancels with
// refund instead
func (m *Module) OnTimeout(s *models.Session) (*rules.StepResult, error) {
	return &rules.StepResult{}, nil
}

func (m *Module) commit(st *state, userID string, amount int64) {
	st.Round[userID] += amount
	st.Committed[userID] += amount
}

// reopenRound resets everyone's acted flag except the aggressor
func (m *Module) reopenRound(s *models.Session, st *state, aggressor string) {
	st.Acted = map[string]bool{aggressor: true}
}

// roundClosed reports whether every contester has matched the current bet
// or is all in
func (m *Module) roundClosed(s *models.Session, st *state) bool {
	for _, p := range s.ActiveParticipants() {
		allIn := st.Committed[p.UserID] >= p.Stake
		if allIn {
			continue
		}
		if !st.Acted[p.UserID] || st.Round[p.UserID] < st.CurrentBet {
			return false
		}
	}
	return true
}

// revealNext flips the next board stage and opens a fresh round
func (m *Module) revealNext(st *state) {
	if st.Revealed == 0 {
		st.Revealed = 3
	} else {
		st.Revealed++
	}
	st.CurrentBet = 0
	st.Round = make(map[string]int64)
	st.Acted = make(map[string]bool)
}

// lastContester returns the sole remaining active participant, or nil
func (m *Module) lastContester(s *models.Session) *models.Participant {
	active := s.ActiveParticipants()
	if len(active) == 1 {
		return active[0]
	}
	return nil
}

// showdown ranks the remaining hands and names every holder of the best one
func (m *Module) showdown(s *models.Session, st *state) (*models.Outcome, error) {
	var best int16
	first := true
	scores := make(map[string]int16)

	for _, p := range s.ActiveParticipants() {
		hand, err := finalHand(st.Hole[p.UserID], st.Board)
		if err != nil {
			return nil, err
		}
		score := poker.Eval7(&hand)
		scores[p.UserID] = score
		if first || score > best {
			best = score
			first = false
		}
	}

	var winners []string
	for _, p := range s.ActiveParticipants() {
		if scores[p.UserID] == best {
			winners = append(winners, p.UserID)
		}
	}

	return &models.Outcome{
		Kind:    models.OutcomeProportional,
		Winners: winners,
		Detail:  "showdown",
	}, nil
}

// finalHand assembles the seven-card hand for evaluation
func finalHand(hole []int, board []int) ([7]poker.Card, error) {
	var hand [7]poker.Card
	cards := make([]int, 0, 7)
	cards = append(cards, board...)
	cards = append(cards, hole...)
	if len(cards) != 7 {
		return hand, rules.ErrCorruptState
	}

	for i, idx := range cards {
		card, err := poker.MakeCard(poker.Suit(idx/13), poker.Rank(idx%13+1))
		if err != nil {
			return hand, fmt.Errorf("invalid card index %d: %w", idx, err)
		}
		hand[i] = card
	}
	return hand, nil
}

// RevealedBoard returns the face-up board cards for a session view
func RevealedBoard(s *models.Session) []int {
	st, err := loadState(s)
	if err != nil {
		return nil
	}
	board := make([]int, st.Revealed)
	copy(board, st.Board[:st.Revealed])
	return board
}

// HoleCards returns a participant's own cards for a session view
func HoleCards(s *models.Session, userID string) []int {
	st, err := loadState(s)
	if err != nil {
		return nil
	}
	hole := make([]int, len(st.Hole[userID]))
	copy(hole, st.Hole[userID])
	sort.Ints(hole)
	return hole
}

func loadState(s *models.Session) (*state, error) {
	if len(s.RuleState) == 0 {
		return nil, rules.ErrCorruptState
	}
	var st state
	if err := json.Unmarshal(s.RuleState, &st); err != nil {
		return nil, rules.ErrCorruptState
	}
	return &st, nil
}

func saveState(s *models.Session, st *state) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode rule state: %w", err)
	}
	s.RuleState = data
	return nil
}
