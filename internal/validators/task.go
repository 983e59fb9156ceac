package validators

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Field names of task requests and list query parameters.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"

	FieldPage   = "page"
	FieldLimit  = "limit"
	FieldSearch = "search"
)

// TaskValidator validates task bodies, task ids and list query parameters.
type TaskValidator struct {
}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate dispatches on the request type. Task ids alone are validated by
// passing an [models.UpdateTaskRequest] with only TaskID set and [FieldID].
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTaskRequest:
		return v.validateCreateTaskRequest(ctx, value, fields...)
	case *models.CreateTaskRequest:
		return v.validateCreateTaskRequest(ctx, *value, fields...)

	case models.UpdateTaskRequest:
		return v.validateUpdateTaskRequest(ctx, value, fields...)
	case *models.UpdateTaskRequest:
		return v.validateUpdateTaskRequest(ctx, *value, fields...)

	case models.TaskListQuery:
		return v.validateTaskListQuery(ctx, value, fields...)
	case *models.TaskListQuery:
		return v.validateTaskListQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateCreateTaskRequest(ctx context.Context, request models.CreateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldStatus}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(request.Title) == "" {
				errs = errs.add(FieldTitle, "Title is required")
			}
		case FieldDescription:
			if strings.TrimSpace(request.Description) == "" {
				errs = errs.add(FieldDescription, "Description is required")
			}
		case FieldStatus:
			if request.Status != "" && !request.Status.IsValid() {
				errs = errs.add(FieldStatus, "Invalid status value")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *TaskValidator) validateUpdateTaskRequest(ctx context.Context, request models.UpdateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldDescription, FieldStatus}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidUUID(request.TaskID) {
				errs = errs.add(FieldID, "Invalid task id")
			}
		case FieldTitle:
			if request.Title != nil && strings.TrimSpace(*request.Title) == "" {
				errs = errs.add(FieldTitle, "Title cannot be empty")
			}
		case FieldDescription:
			if request.Description != nil && strings.TrimSpace(*request.Description) == "" {
				errs = errs.add(FieldDescription, "Description cannot be empty")
			}
		case FieldStatus:
			if request.Status != nil && !request.Status.IsValid() {
				errs = errs.add(FieldStatus, "Invalid status value")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *TaskValidator) validateTaskListQuery(ctx context.Context, query models.TaskListQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldLimit, FieldStatus, FieldSearch}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldPage:
			if msg := positiveIntParam(query.Page, "Page"); msg != "" {
				errs = errs.add(FieldPage, msg)
			}
		case FieldLimit:
			if msg := positiveIntParam(query.Limit, "Limit"); msg != "" {
				errs = errs.add(FieldLimit, msg)
			}
		case FieldStatus:
			if query.Status == nil {
				continue
			}
			if *query.Status == "" {
				errs = errs.add(FieldStatus, "Status cannot be empty")
			} else if !models.TaskStatus(*query.Status).IsValid() {
				errs = errs.add(FieldStatus, "Status must be one of: Pending, In Progress, Completed")
			}
		case FieldSearch:
			// any string is accepted
		default:
			return ErrUnknownField
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQueryParams, errs)
	}
	return nil
}

// maxIntParam bounds page and limit so that the row offset cannot overflow.
const maxIntParam = math.MaxInt32

// positiveIntParam returns the failure message for an optional positive
// integer parameter, or "" if the value is absent or valid.
func positiveIntParam(value *string, name string) string {
	if value == nil {
		return ""
	}
	if *value == "" {
		return name + " cannot be empty"
	}

	n, err := strconv.Atoi(*value)
	if err != nil || n < 1 || n > maxIntParam {
		return name + " must be a positive integer"
	}
	return ""
}
