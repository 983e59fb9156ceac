// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var request models.CreateTaskRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.Normalize()

	if err := h.taskValidator.Validate(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, request.Task(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("task_id", task.ID).Msg("task created")

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Task created successfully",
		Task:    &task,
	}, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	query := taskListQuery(r.URL.Query())
	if err := h.taskValidator.Validate(ctx, query); err != nil {
		writeError(w, r, err)
		return
	}

	filter := models.TaskFilter{
		UserID: userID,
		Page:   intParam(query.Page, models.DefaultPage),
		Limit:  intParam(query.Limit, models.DefaultLimit),
	}
	if query.Status != nil {
		filter.Status = models.TaskStatus(*query.Status)
	}
	if query.Search != nil {
		filter.Search = strings.TrimSpace(*query.Search)
	}

	page, err := h.services.TaskService.ListTasks(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TaskListResponse{
		Success:    true,
		Tasks:      page.Tasks,
		Pagination: page.Pagination,
	}, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	taskID, err := h.taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.GetTask(ctx, userID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Task: &task}, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	request := models.UpdateTaskRequest{TaskID: chi.URLParam(r, "id")}
	if err := decodeBody(r, &request.TaskUpdate); err != nil {
		writeError(w, r, err)
		return
	}
	request.Normalize()

	if err := h.taskValidator.Validate(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, userID, request.TaskID, request.TaskUpdate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Task updated successfully",
		Task:    &task,
	}, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	taskID, err := h.taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("task_id", taskID).Msg("task deleted")

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "Task deleted successfully",
	}, http.StatusOK)
}

// taskIDParam returns the validated {id} path parameter.
func (h *Handler) taskIDParam(r *http.Request) (string, error) {
	request := models.UpdateTaskRequest{TaskID: chi.URLParam(r, "id")}
	if err := h.taskValidator.Validate(r.Context(), request, validators.FieldID); err != nil {
		return "", err
	}
	return request.TaskID, nil
}

func taskListQuery(values url.Values) models.TaskListQuery {
	param := func(name string) *string {
		if !values.Has(name) {
			return nil
		}
		value := values.Get(name)
		return &value
	}

	return models.TaskListQuery{
		Page:   param(validators.FieldPage),
		Limit:  param(validators.FieldLimit),
		Status: param(validators.FieldStatus),
		Search: param(validators.FieldSearch),
	}
}

// intParam parses an already validated parameter, falling back to def when
// it is absent.
func intParam(value *string, def int) int {
	if value == nil {
		return def
	}
	n, err := strconv.Atoi(*value)
	if err != nil {
		return def
	}
	return n
}
