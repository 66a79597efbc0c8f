package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	// Update persists a mutated ticket guarded by its previous version and
	// returns ErrVersionConflict when another writer got there first.
	Update(ctx context.Context, ticket *Ticket) error
	// GetByID returns ErrTicketNotFound for unknown ids.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// GetByTicketID returns comments ordered by creation time then id.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
