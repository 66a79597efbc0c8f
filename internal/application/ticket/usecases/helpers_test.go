package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const testSubmitter = "mikhailova.anna.vadimovna@gmail.com"

func existingTicket(t *testing.T, id uint, state vo.TicketState) *ticket.Ticket {
	t.Helper()
	past := time.Now().UTC().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(id, "printer jam", "tray 2 is stuck", testSubmitter, state, 1, past, past)
	require.NoError(t, err)
	return tk
}

func strPtr(s string) *string {
	return &s
}
