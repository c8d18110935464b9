package install

import (
	"errors"
	"fmt"

	"github.com/conn-castle/package-layer/internal/messages"
)

// ValidationError reports invalid or conflicting install inputs. It is
// raised before any remote call and is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PromptDeniedError reports a declined confirmation that the install
// cannot proceed without.
type PromptDeniedError struct {
	Prompt string
}

func (e *PromptDeniedError) Error() string {
	return messages.InstallCanceled
}

// IsPromptDenied reports whether err is a PromptDeniedError.
func IsPromptDenied(err error) bool {
	var p *PromptDeniedError
	return errors.As(err, &p)
}

// CreationError reports a create call that succeeded at the transport
// level but returned no request id.
type CreationError struct {
	VersionKey string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf(messages.InstallCreateFailedFmt, e.VersionKey)
}

// RemoteInstallError reports an install request that reached the terminal
// ERROR status. Message carries the aggregated numbered error list.
type RemoteInstallError struct {
	RequestID string
	Message   string
}

func (e *RemoteInstallError) Error() string {
	return e.Message
}
