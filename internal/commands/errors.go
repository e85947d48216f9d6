package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command failures. The CLI and callers match
// on these instead of parsing messages.
const (
	codeMessageInvalid  = "SITE_COMMAND_MESSAGE_INVALID"
	codeCanceled        = "SITE_COMMAND_CANCELED"
	codeTimedOut        = "SITE_COMMAND_TIMED_OUT"
	codeContextFailed   = "SITE_COMMAND_CONTEXT_FAILED"
	codeExecutionFailed = "SITE_COMMAND_FAILED"
)

// wrapValidationError categorises a message validation failure. Errors that
// already carry a category pass through untouched, so the innermost
// classification wins.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "site command message rejected").
		WithTextCode(codeMessageInvalid)
}

// wrapContextError distinguishes cancellation from timeout from any other
// context failure.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	code, message := codeContextFailed, "site command context failed"
	switch {
	case errors.Is(err, context.Canceled):
		code, message = codeCanceled, "site command canceled"
	case errors.Is(err, context.DeadlineExceeded):
		code, message = codeTimedOut, "site command timed out"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}

// wrapExecuteError categorises a failure from the wrapped command function.
func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "site command failed").
		WithTextCode(codeExecutionFailed)
}
