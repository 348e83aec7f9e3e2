// Package roleeconomy drives hidden-role resource races. Miners grow a
// shared vault toward a threshold while hidden saboteurs drain it;
// accusations accumulate into majority eliminations. Miners win when the
// vault crosses the threshold or every saboteur is out; saboteurs win when
// every miner is out.
package roleeconomy

import (
	"encoding/json"
	"fmt"

	"github.com/nolanpeet/stakehouse/internal/dice"
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

const (
	// ActionMine adds the miner yield to the vault
	ActionMine = rules.ActionType("mine")

	// ActionSteal drains the vault; only saboteurs profit from it but any
	// player may attempt it to muddy the waters
	ActionSteal = rules.ActionType("steal")

	// ActionAccuse votes to eliminate a target; a majority of active
	// players eliminates
	ActionAccuse = rules.ActionType("accuse")
)

const (
	// RoleMiner works toward the vault threshold
	RoleMiner = "miner"

	// RoleSaboteur wins by eliminating the miners
	RoleSaboteur = "saboteur"
)

const (
	mineYield  = 10
	stealYield = 15

	// vaultThreshold is the shared resource level at which miners win
	vaultThreshold = 100
)

// roleData is a participant's hidden role
type roleData struct {
	Role string `json:"role"`
}

// state is the module's shared data, stored on the session
type state struct {
	// Vault is the shared resource level
	Vault int64 `json:"vault"`

	// Accusations maps target user ID to the set of accusers
	Accusations map[string][]string `json:"accusations"`
}

// Config contains the dependencies for the role economy module
type Config struct {
	// Roller shuffles role assignment
	Roller dice.Roller
}

// Module implements rules.Module for role economy sessions
type Module struct {
	roller dice.Roller
}

// New creates a new role economy module
func New(cfg *Config) (*Module, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, fmt.Errorf("roller cannot be nil")
	}

	return &Module{roller: cfg.Roller}, nil
}

// Kind reports which session kind this module drives
func (m *Module) Kind() models.SessionKind {
	return models.KindRoleEconomy
}

// TurnBased reports that the economy runs on round-robin turns
func (m *Module) TurnBased() bool {
	return true
}

// Init deals hidden roles: one saboteur per three players, at least one
func (m *Module) Init(s *models.Session) error {
	active := s.ActiveParticipants()
	saboteurs := len(active) / 3
	if saboteurs == 0 {
		saboteurs = 1
	}

	perm := m.roller.Perm(len(active))
	for i, idx := range perm {
		role := RoleMiner
		if i < saboteurs {
			role = RoleSaboteur
		}
		data, err := json.Marshal(&roleData{Role: role})
		if err != nil {
			return fmt.Errorf("failed to encode role: %w", err)
		}
		active[idx].RoleData = data
	}

	return saveState(s, &state{Accusations: make(map[string][]string)})
}

// LegalActions lists the economy moves
func (m *Module) LegalActions(s *models.Session) []rules.Action {
	return []rules.Action{
		{Type: ActionMine},
		{Type: ActionSteal},
		{Type: ActionAccuse},
	}
}

// Apply executes one economy move
func (m *Module) Apply(s *models.Session, userID string, a rules.Action) (*rules.StepResult, error) {
	p := s.Participant(userID)
	if p == nil || p.Status != models.ParticipantStatusActive {
		return nil, rules.ErrNotParticipant
	}

	st, err := loadState(s)
	if err != nil {
		return nil, err
	}

	detail := ""
	switch a.Type {
	case ActionMine:
		st.Vault += mineYield
		detail = fmt.Sprintf("%s mined", userID)

	case ActionSteal:
		st.Vault -= stealYield
		if st.Vault < 0 {
			st.Vault = 0
		}
		detail = "the vault was raided"

	case ActionAccuse:
		target := s.Participant(a.Target)
		if target == nil || target.Status != models.ParticipantStatusActive || a.Target == userID {
			return nil, rules.ErrIllegalAction
		}
		if err := m.accuse(s, st, userID, a.Target); err != nil {
			return nil, err
		}
		detail = fmt.Sprintf("%s accused %s", userID, a.Target)

	default:
		return nil, rules.ErrIllegalAction
	}

	if outcome, err := m.checkWin(s, st); err != nil {
		return nil, err
	} else if outcome != nil {
		if err := saveState(s, st); err != nil {
			return nil, err
		}
		return &rules.StepResult{Outcome: outcome, Detail: detail}, nil
	}

	if err := saveState(s, st); err != nil {
		return nil, err
	}

	return &rules.StepResult{AdvanceTurn: true, Detail: detail}, nil
}

// OnTimeout ends the stalled economy: threshold unreached means the
// saboteurs outlasted the miners
func (m *Module) OnTimeout(s *models.Session) (*rules.StepResult, error) {
	winners, err := m.usersWithRole(s, RoleSaboteur)
	if err != nil {
		return nil, err
	}
	if len(winners) == 0 {
		return &rules.StepResult{}, nil
	}

	return &rules.StepResult{
		Outcome: &models.Outcome{
			Kind:    models.OutcomeProportional,
			Winners: winners,
			Detail:  "vault threshold never reached",
		},
	}, nil
}

// accuse registers a vote; a strict majority of active players eliminates
// the target and wipes the slate
func (m *Module) accuse(s *models.Session, st *state, accuser, target string) error {
	for _, existing := range st.Accusations[target] {
		if existing == accuser {
			return rules.ErrIllegalAction
		}
	}
	st.Accusations[target] = append(st.Accusations[target], accuser)

	if len(st.Accusations[target])*2 > len(s.ActiveParticipants()) {
		s.Participant(target).Status = models.ParticipantStatusEliminated
		st.Accusations = make(map[string][]string)
	}

	return nil
}

// checkWin evaluates the three terminal conditions
func (m *Module) checkWin(s *models.Session, st *state) (*models.Outcome, error) {
	if st.Vault >= vaultThreshold {
		winners, err := m.usersWithRole(s, RoleMiner)
		if err != nil {
			return nil, err
		}
		return &models.Outcome{
			Kind:    models.OutcomeProportional,
			Winners: winners,
			Detail:  "vault threshold reached",
		}, nil
	}

	miners, saboteurs := 0, 0
	for _, p := range s.ActiveParticipants() {
		role, err := participantRole(p)
		if err != nil {
			return nil, err
		}
		if role == RoleSaboteur {
			saboteurs++
		} else {
			miners++
		}
	}

	if saboteurs == 0 {
		winners, err := m.usersWithRole(s, RoleMiner)
		if err != nil {
			return nil, err
		}
		return &models.Outcome{
			Kind:    models.OutcomeProportional,
			Winners: winners,
			Detail:  "all saboteurs eliminated",
		}, nil
	}

	if miners == 0 {
		winners, err := m.usersWithRole(s, RoleSaboteur)
		if err != nil {
			return nil, err
		}
		return &models.Outcome{
			Kind:    models.OutcomeProportional,
			Winners: winners,
			Detail:  "all miners eliminated",
		}, nil
	}

	return nil, nil
}

// usersWithRole returns holders of a role in participant order, eliminated
// seats included: a miner voted out still shares a miner win
func (m *Module) usersWithRole(s *models.Session, role string) ([]string, error) {
	var users []string
	for _, p := range s.Participants {
		if p.Status == models.ParticipantStatusSpectator {
			continue
		}
		r, err := participantRole(p)
		if err != nil {
			return nil, err
		}
		if r == role {
			users = append(users, p.UserID)
		}
	}
	return users, nil
}

// Role reveals a participant's hidden role; callers must only show it to
// the participant themselves before the session ends
func Role(p *models.Participant) (string, error) {
	return participantRole(p)
}

// Vault returns the shared resource level for a session view
func Vault(s *models.Session) int64 {
	st, err := loadState(s)
	if err != nil {
		return 0
	}
	return st.Vault
}

func participantRole(p *models.Participant) (string, error) {
	if len(p.RoleData) == 0 {
		return "", rules.ErrCorruptState
	}
	var data roleData
	if err := json.Unmarshal(p.RoleData, &data); err != nil {
		return "", rules.ErrCorruptState
	}
	return data.Role, nil
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
