// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status,omitempty"`
}

// Normalize trims the title and description.
func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

// Task returns the new task for owner. An empty status defaults to
// [StatusPending].
func (r CreateTaskRequest) Task(owner int64) Task {
	status := r.Status
	if status == "" {
		status = StatusPending
	}

	return Task{
		UserID:      owner,
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
	}
}

// UpdateTaskRequest is a PUT /api/tasks/{id} request: the path id plus the
// partial body.
type UpdateTaskRequest struct {
	TaskID string `json:"-"`
	TaskUpdate
}

// Normalize trims the provided title and description.
func (r *UpdateTaskRequest) Normalize() {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		r.Title = &title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		r.Description = &description
	}
}

// TaskListQuery holds the raw query parameters of GET /api/tasks.
// A nil field means the parameter was absent.
type TaskListQuery struct {
	Page   *string
	Limit  *string
	Status *string
	Search *string
}
