package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

type AuthService interface {
	// RegisterUser hashes user.Password and stores the account.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	// Login checks user.Email and user.Password. Unknown email and wrong
	// password both yield ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TaskService manages the tasks of one owner at a time. Descriptions are
// plaintext on this interface and encrypted below it.
type TaskService interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, userID int64, taskID string) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) (models.TaskPage, error)
	UpdateTask(ctx context.Context, userID int64, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID int64, taskID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetEnvironment(ctx context.Context) string
}
