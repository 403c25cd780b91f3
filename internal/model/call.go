package model

import (
	"time"
)

// Call is the aggregate root: tags attach through the call_tags join
// table, tasks belong to exactly one call. UserID is a plain reference,
// not a foreign key.
type Call struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	UserID    uint      `gorm:"not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tags  []Tag  `gorm:"many2many:call_tags" json:"tags"`
	Tasks []Task `gorm:"foreignKey:CallID" json:"tasks"`
}
