package model

import (
	"time"
)

// TaskStatus is the follow-up lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// ValidTaskStatus reports whether s is one of the three lifecycle states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Status    TaskStatus `gorm:"not null;default:'Open'" json:"status"`
	CallID    uint       `gorm:"not null;index" json:"callId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Call Call `gorm:"foreignKey:CallID;constraint:OnDelete:CASCADE" json:"-"`
}
