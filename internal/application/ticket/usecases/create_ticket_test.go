package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(12)
		},
	}
	uc := NewCreateTicketUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Name:           "printer jam",
		Description:    "tray 2 is stuck",
		SubmitterEmail: testSubmitter,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(12), result.TicketID)
	assert.Equal(t, "Ticket printer jam has been created successfully.", result.Message)
	require.NotNil(t, saved)
	assert.Equal(t, vo.StateOpen, saved.State())
	assert.Equal(t, testSubmitter, saved.Email())
	assert.Equal(t, saved.CreatedAt(), saved.UpdatedAt())
}

func TestCreateTicketUseCase_Execute_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing name", CreateTicketCommand{Description: "d", SubmitterEmail: testSubmitter}},
		{"name too long", CreateTicketCommand{Name: strings.Repeat("x", 201), Description: "d", SubmitterEmail: testSubmitter}},
		{"missing description", CreateTicketCommand{Name: "n", SubmitterEmail: testSubmitter}},
		{"missing submitter", CreateTicketCommand{Name: "n", Description: "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					t.Fatal("save must not be called")
					return nil
				},
			}
			uc := NewCreateTicketUseCase(repo, newTestLogger())

			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestCreateTicketUseCase_Execute_StorageError(t *testing.T) {
	cause := stderrors.New("connection refused")
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error { return cause },
	}
	uc := NewCreateTicketUseCase(repo, newTestLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{Name: "n", Description: "d", SubmitterEmail: testSubmitter})

	assert.True(t, errors.IsStorageError(err))
	assert.ErrorIs(t, err, cause)
}
