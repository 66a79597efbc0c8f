package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

func TestTicketMapper_RoundTrip(t *testing.T) {
	m := NewTicketMapper()
	created := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(5, "printer jam", "tray 2", "a@b.io", vo.StateWaiting, 4, created, created.Add(time.Hour))
	require.NoError(t, err)

	model := m.ToModel(tk)
	assert.Equal(t, "WAITING", model.State)
	assert.Equal(t, 4, model.Version)

	back, err := m.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, tk, back)
}

func TestTicketMapper_ToDomain_UnknownState(t *testing.T) {
	m := NewTicketMapper()
	now := time.Now().UTC()

	_, err := m.ToDomain(&models.TicketModel{ID: 1, State: "ARCHIVED", Created: now, Updated: now})

	assert.ErrorContains(t, err, "ARCHIVED")
}

func TestTicketMapper_ToDomain_NormalizesToUTC(t *testing.T) {
	m := NewTicketMapper()
	local := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	tk, err := m.ToDomain(&models.TicketModel{ID: 1, State: "OPEN", Created: local, Updated: local, Version: 1})

	require.NoError(t, err)
	assert.Equal(t, time.UTC, tk.CreatedAt().Location())
	assert.True(t, tk.CreatedAt().Equal(local))
}

func TestTicketMapper_Comments(t *testing.T) {
	m := NewTicketMapper()
	now := time.Now().UTC()

	list, err := m.CommentsToDomain([]models.CommentModel{
		{ID: 1, TicketID: 2, Text: "first", Email: "a@b.io", Created: now},
		{ID: 2, TicketID: 2, Text: "second", Email: "a@b.io", Created: now},
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[1].Text())

	model := m.CommentToModel(list[0])
	assert.Equal(t, uint(2), model.TicketID)

	_, err = m.CommentsToDomain([]models.CommentModel{{ID: 0, TicketID: 2}})
	assert.Error(t, err)
}
