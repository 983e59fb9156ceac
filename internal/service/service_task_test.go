// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const testTaskID = "0190b7a0-7c6e-7d2a-9f1e-1a2b3c4d5e6f"

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (TaskService, *mock.MockTaskRepository, *mock.MockFieldCipher) {
	t.Helper()

	repo := mock.NewMockTaskRepository(ctrl)
	cipher := mock.NewMockFieldCipher(ctrl)

	return NewTaskService(repo, cipher, logger.Nop()), repo, cipher
}

func TestTaskService_CreateTask_EncryptsBeforePersisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cipher := newTestTaskSvc(t, ctrl)

	gomock.InOrder(
		cipher.EXPECT().Encrypt("get 2 liters").Return("aa:bb", nil),
		repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task models.Task) (models.Task, error) {
				assert.Equal(t, "aa:bb", task.Description)
				assert.True(t, utils.IsValidUUID(task.ID), "id %q", task.ID)
				assert.Equal(t, int64(1), task.UserID)
				return task, nil
			}),
	)

	created, err := svc.CreateTask(context.Background(), models.Task{
		UserID:      1,
		Title:       "buy milk",
		Description: "get 2 liters",
		Status:      models.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "get 2 liters", created.Description)
	assert.NotEmpty(t, created.ID)
}

func TestTaskService_CreateTask_CipherFailureStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, cipher := newTestTaskSvc(t, ctrl)

	cipher.EXPECT().Encrypt(gomock.Any()).Return("", crypto.ErrCipher)

	_, err := svc.CreateTask(context.Background(), models.Task{UserID: 1, Description: "d"})
	assert.ErrorIs(t, err, crypto.ErrCipher)
}

func TestTaskService_CreateTask_NoOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestTaskSvc(t, ctrl)

	_, err := svc.CreateTask(context.Background(), models.Task{Description: "d"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTaskService_GetTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cipher := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetTask(ctx, int64(1), testTaskID).
		Return(models.Task{ID: testTaskID, UserID: 1, Description: "aa:bb"}, nil)
	cipher.EXPECT().Decrypt("aa:bb").Return("plain", nil)

	task, err := svc.GetTask(ctx, 1, testTaskID)
	require.NoError(t, err)
	assert.Equal(t, "plain", task.Description)
}

func TestTaskService_GetTask_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cipher := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetTask(ctx, int64(2), testTaskID).Return(models.Task{}, store.ErrTaskNotFound)
	_, err := svc.GetTask(ctx, 2, testTaskID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	repo.EXPECT().GetTask(ctx, int64(1), testTaskID).Return(models.Task{Description: "zz:zz"}, nil)
	cipher.EXPECT().Decrypt("zz:zz").Return("", crypto.ErrDecryptionFailed)
	_, err = svc.GetTask(ctx, 1, testTaskID)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestTaskService_ListTasks_Paging(t *testing.T) {
	tests := []struct {
		name      string
		in        models.TaskFilter
		wantPage  int
		wantLimit int
	}{
		{"defaults", models.TaskFilter{UserID: 1}, 1, 10},
		{"explicit", models.TaskFilter{UserID: 1, Page: 3, Limit: 5}, 3, 5},
		{"capped", models.TaskFilter{UserID: 1, Page: 1, Limit: 1000}, 1, models.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, cipher := newTestTaskSvc(t, ctrl)

			repo.EXPECT().ListTasks(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, f models.TaskFilter) ([]models.Task, int64, error) {
					assert.Equal(t, tt.wantPage, f.Page)
					assert.Equal(t, tt.wantLimit, f.Limit)
					return []models.Task{{ID: "a", Description: "e1"}, {ID: "b", Description: "e2"}}, 11, nil
				})
			cipher.EXPECT().Decrypt("e1").Return("one", nil)
			cipher.EXPECT().Decrypt("e2").Return("two", nil)

			page, err := svc.ListTasks(context.Background(), tt.in)
			require.NoError(t, err)
			require.Len(t, page.Tasks, 2)
			assert.Equal(t, "one", page.Tasks[0].Description)
			assert.Equal(t, "two", page.Tasks[1].Description)
			assert.Equal(t, int64(11), page.Pagination.Total)
			assert.Equal(t, tt.wantLimit, page.Pagination.Limit)
			assert.Equal(t, (int64(11)+int64(tt.wantLimit)-1)/int64(tt.wantLimit), page.Pagination.TotalPages)
		})
	}
}

func TestTaskService_ListTasks_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTaskSvc(t, ctrl)

	repo.EXPECT().ListTasks(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("boom"))

	_, err := svc.ListTasks(context.Background(), models.TaskFilter{UserID: 1})
	assert.Error(t, err)
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cipher := newTestTaskSvc(t, ctrl)

	description := "new text"
	title := "new title"

	gomock.InOrder(
		cipher.EXPECT().Encrypt("new text").Return("cc:dd", nil),
		repo.EXPECT().UpdateTask(gomock.Any(), int64(1), testTaskID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ string, u models.TaskUpdate) (models.Task, error) {
				require.NotNil(t, u.Description)
				assert.Equal(t, "cc:dd", *u.Description)
				assert.Equal(t, "new title", *u.Title)
				assert.Nil(t, u.Status)
				return models.Task{ID: testTaskID, Title: *u.Title, Description: *u.Description}, nil
			}),
		cipher.EXPECT().Decrypt("cc:dd").Return("new text", nil),
	)

	task, err := svc.UpdateTask(context.Background(), 1, testTaskID, models.TaskUpdate{Title: &title, Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "new text", task.Description)
	assert.Equal(t, "new text", description, "caller's value must not be replaced")
}

func TestTaskService_UpdateTask_WithoutDescriptionSkipsEncryption(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cipher := newTestTaskSvc(t, ctrl)

	status := models.StatusCompleted
	repo.EXPECT().UpdateTask(gomock.Any(), int64(1), testTaskID, models.TaskUpdate{Status: &status}).
		Return(models.Task{ID: testTaskID, Status: status, Description: "aa:bb"}, nil)
	cipher.EXPECT().Decrypt("aa:bb").Return("plain", nil)

	task, err := svc.UpdateTask(context.Background(), 1, testTaskID, models.TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, task.Status)
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTaskSvc(t, ctrl)

	repo.EXPECT().DeleteTask(gomock.Any(), int64(1), testTaskID).Return(store.ErrTaskNotFound)

	assert.ErrorIs(t, svc.DeleteTask(context.Background(), 1, testTaskID), store.ErrTaskNotFound)
}

// The real cipher: what the repository receives is never the plaintext and
// what the caller gets back always is.
func TestTaskService_RealCipherRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTaskRepository(ctrl)
	cipher, err := crypto.NewFieldCipher([]byte("0123456789abcdef0123456789abcdef"), logger.Nop())
	require.NoError(t, err)
	svc := NewTaskService(repo, cipher, logger.Nop())

	plaintext := gofakeit.New(7).Sentence(12)
	var stored models.Task
	repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			stored = task
			return task, nil
		})
	repo.EXPECT().GetTask(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(context.Context, int64, string) (models.Task, error) { return stored, nil })

	created, err := svc.CreateTask(context.Background(), models.Task{UserID: 1, Title: "t", Description: plaintext})
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, stored.Description)
	assert.Contains(t, stored.Description, ":")

	fetched, err := svc.GetTask(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, plaintext, fetched.Description)
}
