package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

type Comment struct {
	id        uint
	ticketID  uint
	text      string
	email     string
	createdAt time.Time
}

func NewComment(ticketID uint, text, email string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if text == "" {
		return nil, fieldError("text", "is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &Comment{
		ticketID:  ticketID,
		text:      text,
		email:     email,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID uint, text, email string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		text:      text,
		email:     email,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) Email() string {
	return c.email
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
