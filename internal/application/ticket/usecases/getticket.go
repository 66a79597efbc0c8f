package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

// GetTicketUseCase serves the ticket detail, reading through the detail cache.
// Cache failures degrade to a store read and are never returned.
type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	cache       TicketDetailCache
	metrics     TicketMetrics
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	cache TicketDetailCache,
	metrics TicketMetrics,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	uc.logger.Debugw("executing get ticket use case", "ticket_id", query.TicketID)

	cached, generation, err := uc.cache.Get(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket detail cache read failed", "ticket_id", query.TicketID, "error", err)
	}
	if cached != nil {
		uc.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	uc.metrics.RecordCacheLookup(false)

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, translateError(err, "failed to load ticket")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", query.TicketID, "error", err)
		return nil, translateError(err, "failed to load comments")
	}

	detail := dto.ToTicketDetailDTO(t, comments)

	if err := uc.cache.Set(ctx, query.TicketID, detail, generation); err != nil {
		uc.logger.Warnw("ticket detail cache write failed", "ticket_id", query.TicketID, "error", err)
	}

	return detail, nil
}
