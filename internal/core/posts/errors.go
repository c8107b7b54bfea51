package posts

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound is returned by repositories when a post row does not exist
var ErrNotFound = errors.New("post not found")

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string // e.g., "post", "user"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match post NotFoundErrors
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound && e.Resource == "post"
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, id int64) error {
	return &NotFoundError{
		Resource: resource,
		ID:       strconv.FormatInt(id, 10),
	}
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrNotFound)
}

// ImageUploadError means the image store rejected an upload or returned no URL.
// The enclosing create/update did not persist anything.
type ImageUploadError struct {
	Err error
	Op  string
}

func (e *ImageUploadError) Error() string {
	return fmt.Sprintf("image upload failed during %s: %v", e.Op, e.Err)
}

func (e *ImageUploadError) Unwrap() error { return e.Err }

// IsImageUploadFailed checks if error is an image upload failure
func IsImageUploadFailed(err error) bool {
	var uploadErr *ImageUploadError
	return errors.As(err, &uploadErr)
}

// PersistenceError means a backing-store operation failed
type PersistenceError struct {
	Err    error
	Op     string
	PostID int64
}

func (e *PersistenceError) Error() string {
	if e.PostID != 0 {
		return fmt.Sprintf("post %s failed for post %d: %v", e.Op, e.PostID, e.Err)
	}
	return fmt.Sprintf("post %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsPersistenceFailed checks if error is a persistence failure
func IsPersistenceFailed(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}
