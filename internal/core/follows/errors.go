package follows

import "errors"

var (
	// ErrFollowNotFound indicates the follow edge doesn't exist
	ErrFollowNotFound = errors.New("follow not found")

	// ErrUserNotFound indicates the user to follow doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCannotFollowSelf indicates a user tried to follow themselves
	ErrCannotFollowSelf = errors.New("cannot follow yourself")

	// ErrAlreadyFollowing indicates a pending or accepted follow already exists
	ErrAlreadyFollowing = errors.New("already following or request pending")

	// ErrNotPending indicates the request was already answered
	ErrNotPending = errors.New("follow request is not pending")

	// ErrNotAuthorized indicates the caller is not the target of the request
	ErrNotAuthorized = errors.New("not authorized")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFollowNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflict checks if an error is a state conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyFollowing) ||
		errors.Is(err, ErrNotPending)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCannotFollowSelf)
}
