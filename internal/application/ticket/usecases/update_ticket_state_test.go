package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func TestUpdateTicketStateUseCase_Execute_Allowed(t *testing.T) {
	tests := []struct {
		from vo.TicketState
		to   string
	}{
		{vo.StateOpen, "ANSWERED"},
		{vo.StateOpen, "CLOSED"},
		{vo.StateAnswered, "WAITING"},
		{vo.StateAnswered, "CLOSED"},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to, func(t *testing.T) {
			tk := existingTicket(t, 1, tt.from)
			before := tk.UpdatedAt()

			var updated *ticket.Ticket
			repo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
				UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
					updated = t
					return nil
				},
			}
			cache := &mockDetailCache{}
			metrics := &mockMetrics{}
			uc := NewUpdateTicketStateUseCase(repo, cache, metrics, newTestLogger())

			result, err := uc.Execute(context.Background(), UpdateTicketStateCommand{TicketID: 1, State: strPtr(tt.to)})

			require.NoError(t, err)
			assert.Equal(t, "Ticket printer jam successfully updated (new state - "+tt.to+").", result.Message)
			require.NotNil(t, updated)
			assert.Equal(t, tt.to, updated.State().String())
			assert.Equal(t, 2, updated.Version())
			assert.False(t, updated.UpdatedAt().Before(before))
			assert.Equal(t, 1, cache.invalidateCalls)
			assert.Equal(t, []recordedTransition{{tt.from.String(), tt.to, true}}, metrics.transitions)
		})
	}
}

func TestUpdateTicketStateUseCase_Execute_Denied(t *testing.T) {
	tests := []struct {
		from vo.TicketState
		to   string
	}{
		{vo.StateAnswered, "OPEN"},
		{vo.StateOpen, "OPEN"},
		{vo.StateOpen, "WAITING"},
		{vo.StateWaiting, "CLOSED"},
		{vo.StateClosed, "OPEN"},
		{vo.StateClosed, "CLOSED"},
		{vo.StateOpen, "REOPENED"},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to, func(t *testing.T) {
			tk := existingTicket(t, 1, tt.from)
			repo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
				UpdateFunc: func(ctx context.Context, _ *ticket.Ticket) error {
					t.Fatal("denied transition must not persist")
					return nil
				},
			}
			cache := &mockDetailCache{}
			uc := NewUpdateTicketStateUseCase(repo, cache, &mockMetrics{}, newTestLogger())

			_, err := uc.Execute(context.Background(), UpdateTicketStateCommand{TicketID: 1, State: strPtr(tt.to)})

			require.True(t, errors.IsValidationError(err))
			assert.Equal(t, MsgTransitionNotAwaited, errors.GetAppError(err).Message)
			assert.Equal(t, tt.from, tk.State())
			assert.Equal(t, 0, cache.invalidateCalls)
		})
	}
}

func TestUpdateTicketStateUseCase_Execute_MissingState(t *testing.T) {
	for name, state := range map[string]*string{"absent": nil, "empty": strPtr("")} {
		t.Run(name, func(t *testing.T) {
			tk := existingTicket(t, 1, vo.StateOpen)
			repo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			}
			uc := NewUpdateTicketStateUseCase(repo, &mockDetailCache{}, NopMetrics(), newTestLogger())

			_, err := uc.Execute(context.Background(), UpdateTicketStateCommand{TicketID: 1, State: state})

			require.True(t, errors.IsValidationError(err))
			assert.Equal(t, MsgOnlyStateModifiable, errors.GetAppError(err).Message)
		})
	}
}

func TestUpdateTicketStateUseCase_Execute_NotFoundBeforeBodyCheck(t *testing.T) {
	uc := NewUpdateTicketStateUseCase(&mockTicketRepository{}, &mockDetailCache{}, NopMetrics(), newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketStateCommand{
		TicketID:   9999,
		RequestErr: errors.NewBadRequestError("Malformed JSON body"),
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicketStateUseCase_Execute_RequestErrorOnExistingTicket(t *testing.T) {
	tk := existingTicket(t, 1, vo.StateOpen)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, _ *ticket.Ticket) error {
			t.Fatal("malformed request must not persist")
			return nil
		},
	}
	uc := NewUpdateTicketStateUseCase(repo, &mockDetailCache{}, NopMetrics(), newTestLogger())
	bodyErr := errors.NewBadRequestError("Malformed JSON body")

	_, err := uc.Execute(context.Background(), UpdateTicketStateCommand{TicketID: 1, State: strPtr("ANSWERED"), RequestErr: bodyErr})

	assert.Equal(t, bodyErr, err)
	assert.Equal(t, vo.StateOpen, tk.State())
}

func TestUpdateTicketStateUseCase_Execute_VersionConflict(t *testing.T) {
	tk := existingTicket(t, 1, vo.StateOpen)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc:  func(ctx context.Context, _ *ticket.Ticket) error { return ticket.ErrVersionConflict },
	}
	cache := &mockDetailCache{}
	metrics := &mockMetrics{}
	uc := NewUpdateTicketStateUseCase(repo, cache, metrics, newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketStateCommand{TicketID: 1, State: strPtr("ANSWERED")})

	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 0, cache.invalidateCalls)
	assert.Empty(t, metrics.transitions)
}

func TestUpdateTicketStateUseCase_Execute_InvalidateFailureIgnored(t *testing.T) {
	tk := existingTicket(t, 1, vo.StateOpen)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	cache := &mockDetailCache{
		InvalidateFunc: func(ctx context.Context, id uint) error { return stderrors.New("redis down") },
	}
	uc := NewUpdateTicketStateUseCase(repo, cache, NopMetrics(), newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketStateCommand{TicketID: 1, State: strPtr("CLOSED")})

	assert.NoError(t, err)
}
