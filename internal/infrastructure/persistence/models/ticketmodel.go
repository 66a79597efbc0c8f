package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

// TicketModel maps the ticket table. Timestamps are written explicitly by the
// domain, so the columns are not gorm's autoCreateTime/autoUpdateTime.
type TicketModel struct {
	ID          uint      `gorm:"primaryKey"`
	Created     time.Time `gorm:"column:created;not null"`
	Updated     time.Time `gorm:"column:updated;not null"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text;not null"`
	Email       string    `gorm:"size:120;not null"`
	State       string    `gorm:"size:10;not null;default:OPEN"`
	Version     int       `gorm:"not null;default:1"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

// CommentModel maps the comment table. Ticket is declared only so AutoMigrate
// creates the foreign key; it is never loaded.
type CommentModel struct {
	ID       uint         `gorm:"primaryKey"`
	Created  time.Time    `gorm:"column:created;not null"`
	TicketID uint         `gorm:"not null;index:ix_comment_ticket_id"`
	Text     string       `gorm:"type:text;not null"`
	Email    string       `gorm:"size:120;not null"`
	Ticket   *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:RESTRICT"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
