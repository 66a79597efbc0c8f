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

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	for _, state := range []vo.TicketState{vo.StateOpen, vo.StateAnswered, vo.StateWaiting} {
		t.Run(state.String(), func(t *testing.T) {
			tk := existingTicket(t, 7, state)
			before := tk.UpdatedAt()

			var savedComment *ticket.Comment
			var updatedTicket *ticket.Ticket
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
				UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
					updatedTicket = t
					return nil
				},
			}
			commentRepo := &mockCommentRepository{
				SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
					savedComment = c
					return c.SetID(3)
				},
			}
			tx := &mockTxRunner{}
			cache := &mockDetailCache{}
			metrics := &mockMetrics{}
			uc := NewAddCommentUseCase(ticketRepo, commentRepo, tx, cache, metrics, newTestLogger())

			result, err := uc.Execute(context.Background(), AddCommentCommand{
				TicketID:       7,
				Text:           "still broken",
				SubmitterEmail: testSubmitter,
			})

			require.NoError(t, err)
			assert.Equal(t, "Comment still broken for 7 ticket has been created successfully.", result.Message)
			assert.Equal(t, uint(3), result.CommentID)
			require.NotNil(t, savedComment)
			assert.Equal(t, testSubmitter, savedComment.Email())
			require.NotNil(t, updatedTicket)
			assert.Equal(t, state, updatedTicket.State())
			assert.False(t, updatedTicket.UpdatedAt().Before(before))
			assert.Equal(t, 1, tx.calls)
			assert.Equal(t, 1, cache.invalidateCalls)
			assert.Equal(t, 1, metrics.comments)
		})
	}
}

func TestAddCommentUseCase_Execute_ClosedTicket(t *testing.T) {
	for _, text := range []string{"", "please reopen"} {
		tk := existingTicket(t, 7, vo.StateClosed)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				t.Fatal("comment must not be saved on a closed ticket")
				return nil
			},
		}
		cache := &mockDetailCache{}
		uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockTxRunner{}, cache, &mockMetrics{}, newTestLogger())

		_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 7, Text: text, SubmitterEmail: testSubmitter})

		require.True(t, errors.IsValidationError(err))
		assert.Equal(t, MsgCommentOnClosed, errors.GetAppError(err).Message)
		assert.Equal(t, 0, cache.invalidateCalls)
	}
}

func TestAddCommentUseCase_Execute_EmptyText(t *testing.T) {
	tk := existingTicket(t, 7, vo.StateOpen)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockTxRunner{}, &mockDetailCache{}, NopMetrics(), newTestLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 7, SubmitterEmail: testSubmitter})

	require.True(t, errors.IsValidationError(err))
	assert.Equal(t, "text is required", errors.GetAppError(err).Message)
}

func TestAddCommentUseCase_Execute_NotFound(t *testing.T) {
	uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockTxRunner{}, &mockDetailCache{}, NopMetrics(), newTestLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 9999, Text: "x", SubmitterEmail: testSubmitter})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddCommentUseCase_Execute_RequestError(t *testing.T) {
	bodyErr := errors.NewBadRequestError("Malformed JSON body")

	t.Run("unknown ticket", func(t *testing.T) {
		uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockTxRunner{}, &mockDetailCache{}, NopMetrics(), newTestLogger())

		_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 9999, SubmitterEmail: testSubmitter, RequestErr: bodyErr})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("existing ticket", func(t *testing.T) {
		tk := existingTicket(t, 7, vo.StateOpen)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				t.Fatal("comment must not be saved for a malformed request")
				return nil
			},
		}
		uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockTxRunner{}, &mockDetailCache{}, NopMetrics(), newTestLogger())

		_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 7, SubmitterEmail: testSubmitter, RequestErr: bodyErr})

		assert.Equal(t, bodyErr, err)
	})
}

func TestAddCommentUseCase_Execute_TicketUpdateFails(t *testing.T) {
	tk := existingTicket(t, 7, vo.StateOpen)
	cause := stderrors.New("deadlock detected")
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc:  func(ctx context.Context, _ *ticket.Ticket) error { return cause },
	}
	cache := &mockDetailCache{}
	metrics := &mockMetrics{}
	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockTxRunner{}, cache, metrics, newTestLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 7, Text: "x", SubmitterEmail: testSubmitter})

	assert.True(t, errors.IsStorageError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, cache.invalidateCalls)
	assert.Equal(t, 0, metrics.comments)
}

func TestAddCommentUseCase_Execute_VersionConflict(t *testing.T) {
	tk := existingTicket(t, 7, vo.StateOpen)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc:  func(ctx context.Context, _ *ticket.Ticket) error { return ticket.ErrVersionConflict },
	}
	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockTxRunner{}, &mockDetailCache{}, NopMetrics(), newTestLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 7, Text: "x", SubmitterEmail: testSubmitter})

	assert.True(t, errors.IsConflictError(err))
}
