package component

import "time"

// StateID identifies an AI FSM state.
type StateID string

const (
	StateIdle    StateID = "idle"
	StateChasing StateID = "chasing"
	StateWindup  StateID = "windup"
	StateAttack  StateID = "attack"
	StateRecover StateID = "recover"
)

// AIState stores the current FSM state and when it was entered.
type AIState struct {
	Current StateID
	Since   time.Duration
	// Fired guards the one-shot effect of the attack state.
	Fired bool
}

var AIStateComponent = NewComponent[AIState]("ai_state")
