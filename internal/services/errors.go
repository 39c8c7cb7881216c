package services

import (
	"errors"
	"fmt"
)

var (
	ErrQueryFailed            = errors.New("an error occurred while retrieving transaction data, please try again later")
	ErrReportGenerationFailed = errors.New("error generating report")
)

// QueryError reports a failed transaction query.
// Error() only ever yields the generic message; the cause is kept for diagnostics.
type QueryError struct {
	Cause error
}

func (e *QueryError) Error() string {
	return ErrQueryFailed.Error()
}

func (e *QueryError) Unwrap() []error {
	return []error{ErrQueryFailed, e.Cause}
}

func newQueryError(cause error) error {
	return &QueryError{Cause: cause}
}

// ReportError reports a failed report rendering after a successful query
type ReportError struct {
	Cause error
}

func (e *ReportError) Error() string {
	return ErrReportGenerationFailed.Error()
}

func (e *ReportError) Unwrap() []error {
	return []error{ErrReportGenerationFailed, e.Cause}
}

func newReportError(cause error) error {
	return &ReportError{Cause: cause}
}

// recoveredError converts a recovered panic value into an error
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic: %w", err)
	}
	return fmt.Errorf("recovered panic: %v", r)
}
