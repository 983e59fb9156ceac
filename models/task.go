package models

import "time"

// TaskStatus is the progress state of a task.
type TaskStatus string

// Allowed task statuses. Values are part of the public API and are stored
// verbatim in the database.
const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every valid [TaskStatus] in display order.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

// IsValid reports whether s is one of [TaskStatuses].
func (s TaskStatus) IsValid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Task is a single to-do item owned by exactly one user.
//
// Description holds plaintext everywhere above the service layer. At rest it
// is always an encrypted field envelope; the task service converts between
// the two forms.
type Task struct {
	// ID is a server-assigned UUIDv7 string.
	ID string `json:"id"`

	// UserID is the owner of the task. Never exposed via JSON.
	UserID int64 `json:"-"`

	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`

	// CreatedAt is set once on creation and never modified.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate is a partial update of a task. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update does not change any field.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}
