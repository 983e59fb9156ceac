// Package store persists users and tasks in a relational database.
//
// Two dialects are supported behind the same repositories: PostgreSQL through
// the pgx stdlib driver and SQLite through go-sqlite3. SQL is produced with
// squirrel so that only the placeholder format differs between them.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository is the identity store.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound if nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound if nothing matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TaskRepository is the task store. Every method is scoped to one owner: a
// task that belongs to somebody else is reported as ErrTaskNotFound.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, userID int64, taskID string) (models.Task, error)
	// ListTasks returns one page of tasks matching filter, newest first, and
	// the total number of matching tasks.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, int64, error)
	UpdateTask(ctx context.Context, userID int64, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID string) error
}

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
