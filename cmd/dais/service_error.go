// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/invowk/dais/internal/app/invoke"
	"github.com/invowk/dais/internal/issue"
	"github.com/invowk/dais/internal/paramfile"
	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. Always create via newServiceError to enforce the
// Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError prints the styled message, then the issue help entry
// rendered with the given glamour style.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, stylePath string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	if entry := issue.Get(svcErr.IssueID); entry != nil {
		rendered, err := entry.Render(stylePath)
		if err != nil {
			fmt.Fprintf(stderr, "%s failed to render help entry %d: %v\n", WarningStyle.Render("!"), svcErr.IssueID, err)
			return
		}
		fmt.Fprint(stderr, rendered)
	}
}

// classifyError maps a failure to its exit code and help entry. Missing
// parameters exit with ExitIncomplete; everything else is ExitFailure.
func classifyError(err error) (types.ExitCode, issue.Id) {
	var cfgErr *command.ConfigError
	var ae *issue.ActionableError

	switch {
	case errors.Is(err, command.ErrCallbackIncomplete):
		return types.ExitIncomplete, issue.CallbackIncompleteId
	case errors.Is(err, command.ErrMissingParams):
		return types.ExitIncomplete, issue.MissingParamsId
	case errors.Is(err, invoke.ErrCommandNotFound), errors.Is(err, invoke.ErrNoCommand):
		return types.ExitFailure, issue.CommandNotFoundId
	case errors.Is(err, invoke.ErrPresetNotFound), errors.Is(err, invoke.ErrPresetMismatch):
		return types.ExitFailure, issue.PresetNotFoundId
	case errors.Is(err, command.ErrDependency):
		return types.ExitFailure, issue.DependencyFailedId
	case errors.Is(err, paramfile.ErrInvalidAssignment),
		errors.Is(err, paramfile.ErrUnsupportedFormat),
		errors.Is(err, params.ErrParamType),
		errors.Is(err, params.ErrUnknownParam),
		errors.Is(err, types.ErrInvalidParamName),
		errors.Is(err, invoke.ErrStepsAfterComplete):
		return types.ExitFailure, issue.InvalidParamsId
	case errors.Is(err, command.ErrCompute):
		return types.ExitFailure, issue.ComputeFailedId
	case errors.As(err, &cfgErr):
		return types.ExitFailure, issue.DeclarationFailedId
	case errors.As(err, &ae):
		return types.ExitFailure, issue.ConfigLoadFailedId
	default:
		return types.ExitFailure, 0
	}
}

// fail renders err to stderr and returns the ExitError carrying its code.
// The help entry is shown only in verbose mode.
func (a *App) fail(s *session, err error) error {
	code, id := classifyError(err)
	if !s.verbose {
		id = 0
	}
	msg := ErrorStyle.Render("Error:") + " " + formatErrorForDisplay(err, s.verbose) + "\n"
	renderServiceError(a.stderr, newServiceError(err, id, msg), glamourStyle(s))
	return &ExitError{Code: code}
}

// formatErrorForDisplay uses ActionableError.Format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
