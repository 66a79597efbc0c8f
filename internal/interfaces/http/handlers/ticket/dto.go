package ticket

import (
	"helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateTicketRequest) ToCommand(submitter string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Name:           r.Name,
		Description:    r.Description,
		SubmitterEmail: submitter,
	}
}

// UpdateTicketStateRequest distinguishes a missing state (nil) from an empty
// one; both are rejected by the use case after the ticket lookup.
type UpdateTicketStateRequest struct {
	State *string `json:"state"`
}

// AddCommentRequest is not validated at bind time so that the closed-ticket
// rule is reported before an empty text.
type AddCommentRequest struct {
	Text string `json:"text"`
}

type CreateTicketResponse struct {
	ID uint `json:"id"`
}

type AddCommentResponse struct {
	ID uint `json:"id"`
}
