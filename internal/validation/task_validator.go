package validation

import (
	"time"

	"todo-tracker/internal/domain"
)

// TaskValidator provides validation for task-related input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateDescription validates a task description for creation or update
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, 200) {
		validationError.AddInvalidLengthError("description", trimmed, 1, 200)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateStatus validates an explicitly supplied status value
func (tv *TaskValidator) ValidateStatus(status string) error {
	if !domain.Status(status).IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be Pending, In Progress or Completed")
		return validationError
	}
	return nil
}

// ParseOptionalTimestamp parses an optional wire-format timestamp.
// An empty string is valid and yields nil; a malformed value is a
// validation error. Ordering of start and end is deliberately not
// checked here, matching the surface this replaces.
func (tv *TaskValidator) ParseOptionalTimestamp(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := tv.validator.ParseTimestamp(value)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(field, value, TimestampLayout)
		return nil, validationError
	}
	return &t, nil
}

// GetValidDescription returns a cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}
