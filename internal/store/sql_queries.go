package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	usersTable = "users"
	tasksTable = "tasks"
)

var (
	userColumns = []string{"user_id", "email", "name", "password_hash", "created_at"}
	taskColumns = []string{"id", "user_id", "title", "description", "status", "created_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "name", "password_hash", "created_at").
		Values(user.Email, user.Name, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildCreateTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	return b.Insert(tasksTable).
		Columns(taskColumns...).
		Values(task.ID, task.UserID, task.Title, task.Description, string(task.Status), task.CreatedAt).
		ToSql()
}

func buildGetTaskQuery(b sq.StatementBuilderType, userID int64, taskID string) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
}

// taskFilterCondition is shared by the page and count queries so both see the
// same rows.
func taskFilterCondition(filter models.TaskFilter) sq.And {
	cond := sq.And{sq.Eq{"user_id": filter.UserID}}

	if filter.Status != "" {
		cond = append(cond, sq.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		cond = append(cond, sq.Expr(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.Search)+"%"))
	}

	return cond
}

func buildListTasksQuery(b sq.StatementBuilderType, filter models.TaskFilter) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(taskFilterCondition(filter)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

func buildCountTasksQuery(b sq.StatementBuilderType, filter models.TaskFilter) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(tasksTable).
		Where(taskFilterCondition(filter)).
		ToSql()
}

// buildUpdateTaskQuery sets only the non-nil fields of update.
func buildUpdateTaskQuery(b sq.StatementBuilderType, userID int64, taskID string, update models.TaskUpdate) (string, []any, error) {
	query := b.Update(tasksTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}

	return query.
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, userID int64, taskID string) (string, []any, error) {
	return b.Delete(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
