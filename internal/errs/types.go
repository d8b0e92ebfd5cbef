package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// UnsupportedYearError is returned when a year key has no metric snapshot or
// chart dataset behind it.
type UnsupportedYearError struct {
	ErrorMessage
	Year string
}

// ChartEngineUnavailableError reports that no chart rendering library could
// be loaded. Chart setup is skipped; navigation and tables keep working.
type ChartEngineUnavailableError struct {
	ErrorMessage
	Engine string
}

// TableStateError is raised by the table engine when a widget is used in the
// wrong state, e.g. initialized twice.
type TableStateError struct {
	ErrorMessage
	TableID string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnsupportedYearError(year string) *UnsupportedYearError {
	return &UnsupportedYearError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("unsupported year %q", year)},
		Year:         year,
	}
}

func NewChartEngineUnavailableError(engine string) *ChartEngineUnavailableError {
	return &ChartEngineUnavailableError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("chart engine %q not available", engine)},
		Engine:       engine,
	}
}

func NewTableStateError(tableID, message string) *TableStateError {
	return &TableStateError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("table %s: %s", tableID, message)},
		TableID:      tableID,
	}
}
