package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/mapper"
)

// TicketDetailDTO is the read model served by GET /ticket/{id} and stored in
// the detail cache.
type TicketDetailDTO struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Email       string       `json:"email"`
	State       string       `json:"state"`
	Created     time.Time    `json:"created"`
	Updated     time.Time    `json:"updated"`
	Comments    []CommentDTO `json:"comments"`
}

type CommentDTO struct {
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
	Email   string    `json:"email"`
}

// ToTicketDetailDTO renders a ticket with its comments. Comments is never nil
// so that an empty list serializes as [].
func ToTicketDetailDTO(t *ticket.Ticket, comments []*ticket.Comment) *TicketDetailDTO {
	if t == nil {
		return nil
	}

	return &TicketDetailDTO{
		Name:        t.Name(),
		Description: t.Description(),
		Email:       t.Email(),
		State:       t.State().String(),
		Created:     t.CreatedAt(),
		Updated:     t.UpdatedAt(),
		Comments:    mapper.Map(comments, toCommentDTO),
	}
}

func toCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		Text:    c.Text(),
		Created: c.CreatedAt(),
		Email:   c.Email(),
	}
}
