package usecases

import (
	"context"
	"sync"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, ticket.ErrTicketNotFound
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

// mockTxRunner runs fn inline and records whether it was used.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockDetailCache struct {
	GetFunc        func(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, int64, error)
	SetFunc        func(ctx context.Context, ticketID uint, detail *dto.TicketDetailDTO, generation int64) error
	InvalidateFunc func(ctx context.Context, ticketID uint) error

	setCalls        int
	invalidateCalls int
}

func (m *mockDetailCache) Get(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, int64, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ticketID)
	}
	return nil, 0, nil
}

func (m *mockDetailCache) Set(ctx context.Context, ticketID uint, detail *dto.TicketDetailDTO, generation int64) error {
	m.setCalls++
	if m.SetFunc != nil {
		return m.SetFunc(ctx, ticketID, detail, generation)
	}
	return nil
}

func (m *mockDetailCache) Invalidate(ctx context.Context, ticketID uint) error {
	m.invalidateCalls++
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, ticketID)
	}
	return nil
}

type recordedTransition struct {
	from, to string
	allowed  bool
}

type mockMetrics struct {
	mu          sync.Mutex
	hits        int
	misses      int
	transitions []recordedTransition
	comments    int
}

func (m *mockMetrics) RecordCacheLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

func (m *mockMetrics) RecordTransition(from, to string, allowed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, recordedTransition{from, to, allowed})
}

func (m *mockMetrics) RecordCommentCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments++
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}

// generationCache is an in-memory TicketDetailCache with the same fill
// semantics as the redis implementation.
type generationCache struct {
	mu          sync.Mutex
	entries     map[uint]*dto.TicketDetailDTO
	generations map[uint]int64
}

func newGenerationCache() *generationCache {
	return &generationCache{
		entries:     map[uint]*dto.TicketDetailDTO{},
		generations: map[uint]int64{},
	}
}

func (c *generationCache) Get(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[ticketID], c.generations[ticketID], nil
}

func (c *generationCache) Set(ctx context.Context, ticketID uint, detail *dto.TicketDetailDTO, generation int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[ticketID] == generation {
		c.entries[ticketID] = detail
	}
	return nil
}

func (c *generationCache) Invalidate(ctx context.Context, ticketID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[ticketID]++
	delete(c.entries, ticketID)
	return nil
}
