package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	CommentsToDomain(list []models.CommentModel) ([]*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Created:     t.CreatedAt().UTC(),
		Updated:     t.UpdatedAt().UTC(),
		Name:        t.Name(),
		Description: t.Description(),
		Email:       t.Email(),
		State:       t.State().String(),
		Version:     t.Version(),
	}
}

// ToDomain converts a ticket row to an entity. Rows holding a state outside
// the known set are reported instead of silently coerced.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	state, err := vo.NewTicketState(model.State)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Name,
		model.Description,
		model.Email,
		state,
		model.Version,
		model.Created.UTC(),
		model.Updated.UTC(),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:       c.ID(),
		Created:  c.CreatedAt().UTC(),
		TicketID: c.TicketID(),
		Text:     c.Text(),
		Email:    c.Email(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(model.ID, model.TicketID, model.Text, model.Email, model.Created.UTC())
}

func (m *TicketMapperImpl) CommentsToDomain(list []models.CommentModel) ([]*ticket.Comment, error) {
	return mapper.TryMap(list, func(model models.CommentModel) (*ticket.Comment, error) {
		return m.CommentToDomain(&model)
	})
}
