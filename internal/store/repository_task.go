// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository implements [TaskRepository] against the "tasks" table.
// Descriptions arrive here already encrypted and are stored as is.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	query, args, err := buildCreateTaskQuery(r.db.builder, task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Str("task_id", task.ID).
			Msg("error inserting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

func (r *taskRepository) GetTask(ctx context.Context, userID int64, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTaskQuery(r.db.builder, userID, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	err = r.db.withRetry(ctx, func() error {
		return scanTask(r.db.QueryRowContext(ctx, query, args...), &task)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows), isInvalidID(err):
		return models.Task{}, ErrTaskNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*taskRepository.GetTask").
			Int64("user_id", userID).
			Str("task_id", taskID).
			Msg("error getting task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// ListTasks runs the page query and the count query with the same filter.
func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, int64, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*taskRepository.ListTasks").
		Int64("user_id", filter.UserID).
		Logger()

	countQuery, countArgs, err := buildCountTasksQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Msg("failed to count tasks")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	tasks := make([]models.Task, 0, filter.Limit)
	if total == 0 {
		return tasks, 0, nil
	}

	query, args, err := buildListTasksQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		tasks = tasks[:0]

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var task models.Task
			if err := scanTask(rows, &task); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			tasks = append(tasks, task)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Msg("failed to list tasks")
		return nil, 0, err
	}

	return tasks, total, nil
}

// UpdateTask applies update and returns the stored task. An empty update
// only checks that the task exists.
func (r *taskRepository) UpdateTask(ctx context.Context, userID int64, taskID string, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetTask(ctx, userID, taskID)
	}

	query, args, err := buildUpdateTaskQuery(r.db.builder, userID, taskID, update)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingTask(ctx, "*taskRepository.UpdateTask", query, args); err != nil {
		return models.Task{}, err
	}

	return r.GetTask(ctx, userID, taskID)
}

func (r *taskRepository) DeleteTask(ctx context.Context, userID int64, taskID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(r.db.builder, userID, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingTask(ctx, "*taskRepository.DeleteTask", query, args)
}

// execAffectingTask executes a statement that must touch exactly one owned
// task, reporting ErrTaskNotFound when it touches none.
func (r *taskRepository) execAffectingTask(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return ErrTaskNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *models.Task) error {
	return row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
	)
}

// isInvalidID reports a PostgreSQL rejection of a malformed uuid literal.
func isInvalidID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}
