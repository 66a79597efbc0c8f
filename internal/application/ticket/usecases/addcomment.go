package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID       uint
	Text           string
	SubmitterEmail string
	// RequestErr is a body decoding failure. It is reported only once the
	// ticket is known to exist.
	RequestErr error
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	CreatedAt time.Time
	Message   string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       db.TransactionRunner
	cache       TicketDetailCache
	metrics     TicketMetrics
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr db.TransactionRunner,
	cache TicketDetailCache,
	metrics TicketMetrics,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID)

	var comment *ticket.Comment

	// Ticket load, comment insert and ticket update commit or roll back together.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return translateError(err, "failed to load ticket")
		}
		if cmd.RequestErr != nil {
			return cmd.RequestErr
		}

		comment, err = t.AddComment(cmd.Text, cmd.SubmitterEmail)
		if err != nil {
			uc.logger.Infow("comment rejected", "ticket_id", cmd.TicketID, "state", t.State(), "error", err)
			return translateError(err, "failed to create comment")
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
			return translateError(err, "failed to save comment")
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return translateError(err, "failed to update ticket")
		}

		return nil
	})
	if txErr != nil {
		return nil, translateError(txErr, "failed to add comment")
	}

	uc.metrics.RecordCommentCreated()

	if err := uc.cache.Invalidate(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to invalidate ticket detail cache", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  cmd.TicketID,
		CreatedAt: comment.CreatedAt(),
		Message:   fmt.Sprintf("Comment %s for %d ticket has been created successfully.", comment.Text(), cmd.TicketID),
	}, nil
}
