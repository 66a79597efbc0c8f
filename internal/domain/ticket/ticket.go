package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	MaxNameLength  = 200
	MaxEmailLength = 120
)

type Ticket struct {
	id          uint
	name        string
	description string
	email       string
	state       vo.TicketState
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket opens a ticket on behalf of the submitter email.
func NewTicket(name, description, email string) (*Ticket, error) {
	if name == "" {
		return nil, fieldError("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fieldError("name", fmt.Sprintf("exceeds maximum length of %d characters", MaxNameLength))
	}
	if description == "" {
		return nil, fieldError("description", "is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		name:        name,
		description: description,
		email:       email,
		state:       vo.StateOpen,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	name string,
	description string,
	email string,
	state vo.TicketState,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid state: %s", state)
	}

	return &Ticket{
		id:          id,
		name:        name,
		description: description,
		email:       email,
		state:       state,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Email() string {
	return t.email
}

func (t *Ticket) State() vo.TicketState {
	return t.state
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeState moves the ticket to requested. The ticket is left untouched
// when the state machine denies the move.
func (t *Ticket) ChangeState(requested vo.TicketState) error {
	if !t.state.CanTransitionTo(requested) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, t.state, requested)
	}

	t.state = requested
	t.touch()
	return nil
}

// CanAcceptComments reports whether new comments may be attached.
func (t *Ticket) CanAcceptComments() bool {
	return !t.state.IsClosed()
}

// AddComment creates a comment on this ticket and bumps its modification
// time. Closed tickets reject comments before the text is looked at.
func (t *Ticket) AddComment(text, email string) (*Comment, error) {
	if !t.CanAcceptComments() {
		return nil, ErrTicketClosed
	}

	comment, err := NewComment(t.id, text, email)
	if err != nil {
		return nil, err
	}

	t.touch()
	return comment, nil
}

// touch advances updatedAt without letting it move backwards and bumps the
// optimistic lock version.
func (t *Ticket) touch() {
	t.updatedAt = biztime.Later(t.updatedAt, biztime.NowUTC())
	t.version++
}

func validateEmail(email string) error {
	if email == "" {
		return fieldError("email", "is required")
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fieldError("email", fmt.Sprintf("exceeds maximum length of %d characters", MaxEmailLength))
	}
	return nil
}
