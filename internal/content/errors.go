package content

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers missing required fields, caught before any network call.
	ErrValidation = errors.New("missing required field")

	// ErrUploadFailed means the asset store was unreachable, unconfigured, or
	// rejected the file. The record was not persisted.
	ErrUploadFailed = errors.New("upload failed")
)

func requiredField(name string) error {
	return fmt.Errorf("%w: %s", ErrValidation, name)
}

func uploadError(cause error) error {
	return fmt.Errorf("%w: %v", ErrUploadFailed, cause)
}
