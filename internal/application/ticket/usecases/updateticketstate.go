package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketStateCommand struct {
	TicketID uint
	// State is nil when the request body carried no state field.
	State *string
	// RequestErr is a body decoding failure. It is reported only once the
	// ticket is known to exist.
	RequestErr error
}

type UpdateTicketStateResult struct {
	TicketID uint
	Name     string
	State    string
	Message  string
}

type UpdateTicketStateUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      TicketDetailCache
	metrics    TicketMetrics
	logger     logger.Interface
}

func NewUpdateTicketStateUseCase(
	ticketRepo ticket.TicketRepository,
	cache TicketDetailCache,
	metrics TicketMetrics,
	logger logger.Interface,
) *UpdateTicketStateUseCase {
	return &UpdateTicketStateUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc *UpdateTicketStateUseCase) Execute(ctx context.Context, cmd UpdateTicketStateCommand) (*UpdateTicketStateResult, error) {
	uc.logger.Infow("executing update ticket state use case", "ticket_id", cmd.TicketID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, translateError(err, "failed to load ticket")
	}

	if cmd.RequestErr != nil {
		return nil, cmd.RequestErr
	}

	if cmd.State == nil || *cmd.State == "" {
		return nil, errors.NewValidationError(MsgOnlyStateModifiable)
	}

	from := t.State()
	requested := vo.TicketState(*cmd.State)
	if err := t.ChangeState(requested); err != nil {
		uc.metrics.RecordTransition(from.String(), requested.String(), false)
		uc.logger.Infow("state transition denied",
			"ticket_id", cmd.TicketID,
			"from", from,
			"to", requested,
		)
		return nil, translateError(err, "failed to change state")
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, translateError(err, "failed to update ticket")
	}
	uc.metrics.RecordTransition(from.String(), requested.String(), true)

	if err := uc.cache.Invalidate(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to invalidate ticket detail cache", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket state updated successfully",
		"ticket_id", cmd.TicketID,
		"from", from,
		"to", t.State(),
	)

	return &UpdateTicketStateResult{
		TicketID: t.ID(),
		Name:     t.Name(),
		State:    t.State().String(),
		Message:  fmt.Sprintf("Ticket %s successfully updated (new state - %s).", t.Name(), t.State()),
	}, nil
}
