package model

import (
	"time"

	"wtms.com/wtms/internal/constants"
)

type Task struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	Title        string               `gorm:"not null" json:"title"`
	Description  string               `gorm:"not null" json:"description"`
	DateAssigned time.Time            `json:"date_assigned"`
	DueDate      string               `gorm:"size:10;not null" json:"due_date"`
	Status       constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	AssignedTo   uint                 `gorm:"index;not null" json:"assigned_to"`
}
