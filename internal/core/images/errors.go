package images

import (
	"errors"
	"fmt"
)

var (
	// ErrNoURL is returned when the host accepted an upload but returned no usable URL
	ErrNoURL = errors.New("image store returned no url")

	// ErrInvalidImageURL is returned when a stored URL has no derivable public id
	ErrInvalidImageURL = errors.New("image url has no public id")
)

// StoreError wraps a rejection reported by the image host
type StoreError struct {
	Op      string // "upload" or "destroy"
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("image store %s failed: %s", e.Op, e.Message)
}

// IsStoreError checks if err was reported by the image host
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
