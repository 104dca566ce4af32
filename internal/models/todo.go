package models

import "time"

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

const (
	StatusPending    TodoStatus = "PENDING"
	StatusInProgress TodoStatus = "IN_PROGRESS"
	StatusDone       TodoStatus = "DONE"
)

// Todo represents a todo item. Todos are global: there is no owner column
// and every authenticated user sees the same list.
type Todo struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description *string    `json:"description" gorm:"type:text"`
	Status      TodoStatus `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
