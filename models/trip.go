package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trip is one planned trip owned by a user. Rows are created once by the
// plan endpoint and never updated or deleted.
type Trip struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Destination string         `gorm:"not null" json:"destination"`
	StartDate   string         `gorm:"not null" json:"startDate"`
	EndDate     string         `gorm:"not null" json:"endDate"`
	Budget      int            `gorm:"not null" json:"budget"`
	Vibe        string         `gorm:"not null" json:"vibe"`
	PlanJSON    datatypes.JSON `gorm:"type:jsonb" json:"planJson"`
	UserID      string         `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
