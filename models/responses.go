package models

// Response is the JSON envelope every API endpoint answers with.
// Exactly one of the payload fields is populated depending on the endpoint;
// the rest are omitted.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Errors carries field-level validation failures.
	Errors []FieldError `json:"errors,omitempty"`

	User *AuthenticatedUser `json:"user,omitempty"`
	Task *Task              `json:"task,omitempty"`
}

// FieldError describes why a single request field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// TaskListResponse is the body of GET /api/tasks. Tasks is always present,
// even when empty, so it is kept separate from [Response].
type TaskListResponse struct {
	Success    bool       `json:"success"`
	Tasks      []Task     `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}
