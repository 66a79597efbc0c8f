package valueobjects

import "fmt"

// TicketState is the lifecycle position of a ticket.
type TicketState string

const (
	StateOpen     TicketState = "OPEN"
	StateAnswered TicketState = "ANSWERED"
	StateWaiting  TicketState = "WAITING"
	StateClosed   TicketState = "CLOSED"
)

var validTicketStates = map[TicketState]bool{
	StateOpen:     true,
	StateAnswered: true,
	StateWaiting:  true,
	StateClosed:   true,
}

// WAITING and CLOSED are terminal for API clients.
var ticketStateTransitions = map[TicketState][]TicketState{
	StateOpen: {
		StateAnswered,
		StateClosed,
	},
	StateAnswered: {
		StateWaiting,
		StateClosed,
	},
}

func (s TicketState) String() string {
	return string(s)
}

func (s TicketState) IsValid() bool {
	return validTicketStates[s]
}

// CanTransitionTo reports whether requested is reachable from s in one step.
// Staying in the same state is never a transition.
func (s TicketState) CanTransitionTo(requested TicketState) bool {
	for _, allowed := range ticketStateTransitions[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the states reachable from s, or nil for terminal states.
func (s TicketState) AllowedTransitions() []TicketState {
	allowed := ticketStateTransitions[s]
	if allowed == nil {
		return nil
	}
	out := make([]TicketState, len(allowed))
	copy(out, allowed)
	return out
}

func (s TicketState) IsOpen() bool {
	return s == StateOpen
}

func (s TicketState) IsClosed() bool {
	return s == StateClosed
}

func NewTicketState(s string) (TicketState, error) {
	ts := TicketState(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket state: %s", s)
	}
	return ts, nil
}
