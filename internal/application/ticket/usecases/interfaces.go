package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type UpdateTicketStateExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStateCommand) (*UpdateTicketStateResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

// TicketDetailCache stores rendered ticket details keyed by ticket id.
// Get reports a miss as a nil detail plus a generation that the following
// Set must pass back; Set is a no-op when Invalidate ran in between.
type TicketDetailCache interface {
	Get(ctx context.Context, ticketID uint) (detail *dto.TicketDetailDTO, generation int64, err error)
	Set(ctx context.Context, ticketID uint, detail *dto.TicketDetailDTO, generation int64) error
	Invalidate(ctx context.Context, ticketID uint) error
}

// TicketMetrics receives business counters. All methods must be safe for
// concurrent use.
type TicketMetrics interface {
	RecordCacheLookup(hit bool)
	RecordTransition(from, to string, allowed bool)
	RecordCommentCreated()
}

type nopMetrics struct{}

func (nopMetrics) RecordCacheLookup(bool)                {}
func (nopMetrics) RecordTransition(string, string, bool) {}
func (nopMetrics) RecordCommentCreated()                 {}

// NopMetrics discards all measurements.
func NopMetrics() TicketMetrics { return nopMetrics{} }
