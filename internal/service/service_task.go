// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskService keeps descriptions encrypted at rest. Encryption happens
// strictly before a write reaches the repository and decryption strictly
// after a read returns from it.
type taskService struct {
	repository store.TaskRepository
	cipher     crypto.FieldCipher
	ids        *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewTaskService(repository store.TaskRepository, cipher crypto.FieldCipher, logger *logger.Logger) TaskService {
	return &taskService{
		repository: repository,
		cipher:     cipher,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// CreateTask assigns a new id to task and stores it for task.UserID.
func (s *taskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.UserID == 0 {
		return models.Task{}, ErrInvalidDataProvided
	}

	plaintext := task.Description
	encrypted, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		log.Err(err).Int64("user_id", task.UserID).Msg("description encryption failed")
		return models.Task{}, err
	}

	task.ID = s.ids.Generate()
	task.Description = encrypted

	created, err := s.repository.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}
	created.Description = plaintext

	return created, nil
}

func (s *taskService) GetTask(ctx context.Context, userID int64, taskID string) (models.Task, error) {
	task, err := s.repository.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	return s.decrypt(ctx, task)
}

// ListTasks applies default paging to filter, caps the page size and
// returns the page with its pagination block.
func (s *taskService) ListTasks(ctx context.Context, filter models.TaskFilter) (models.TaskPage, error) {
	if filter.Page < 1 {
		filter.Page = models.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = models.DefaultLimit
	}
	if filter.Limit > models.MaxLimit {
		filter.Limit = models.MaxLimit
	}

	tasks, total, err := s.repository.ListTasks(ctx, filter)
	if err != nil {
		return models.TaskPage{}, fmt.Errorf("task listing ended with error: %w", err)
	}

	for i := range tasks {
		if tasks[i], err = s.decrypt(ctx, tasks[i]); err != nil {
			return models.TaskPage{}, err
		}
	}

	return models.TaskPage{
		Tasks:      tasks,
		Pagination: models.NewPagination(filter, total),
	}, nil
}

func (s *taskService) UpdateTask(ctx context.Context, userID int64, taskID string, update models.TaskUpdate) (models.Task, error) {
	if update.Description != nil {
		encrypted, err := s.cipher.Encrypt(*update.Description)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("task_id", taskID).Msg("description encryption failed")
			return models.Task{}, err
		}
		update.Description = &encrypted
	}

	task, err := s.repository.UpdateTask(ctx, userID, taskID, update)
	if err != nil {
		return models.Task{}, err
	}

	return s.decrypt(ctx, task)
}

func (s *taskService) DeleteTask(ctx context.Context, userID int64, taskID string) error {
	return s.repository.DeleteTask(ctx, userID, taskID)
}

func (s *taskService) decrypt(ctx context.Context, task models.Task) (models.Task, error) {
	plaintext, err := s.cipher.Decrypt(task.Description)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("task_id", task.ID).Msg("description decryption failed")
		return models.Task{}, err
	}
	task.Description = plaintext

	return task, nil
}
