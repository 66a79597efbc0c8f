package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Name        string
	Description string
	// SubmitterEmail is the identity of the caller.
	SubmitterEmail string
}

type CreateTicketResult struct {
	TicketID uint
	Name     string
	Message  string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "name", cmd.Name)

	t, err := ticket.NewTicket(cmd.Name, cmd.Description, cmd.SubmitterEmail)
	if err != nil {
		uc.logger.Warnw("invalid ticket", "error", err)
		return nil, translateError(err, "failed to create ticket")
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, translateError(err, "failed to save ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "name", t.Name())

	return &CreateTicketResult{
		TicketID: t.ID(),
		Name:     t.Name(),
		Message:  fmt.Sprintf("Ticket %s has been created successfully.", t.Name()),
	}, nil
}
