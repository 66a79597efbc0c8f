package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// CommentRepositoryImpl implements ticket.CommentRepository on gorm.
type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewCommentRepository(db *gorm.DB, logger logger.Interface) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *CommentRepositoryImpl) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit("Ticket").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create comment in database", "ticket_id", model.TicketID, "error", err)
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var list []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created ASC").
		Order("id ASC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list comments", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.mapper.CommentsToDomain(list)
}
