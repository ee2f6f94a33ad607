package parser

import "fmt"

// MissingSheetError a required sheet is absent; the file is skipped
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("required sheet %q is missing", e.Sheet)
}

// MissingRequiredFieldError a required metadata cell is empty; the file is skipped
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// EmptyDataError the data sheet held zero rows before the sentinel; the file is skipped
type EmptyDataError struct{}

func (e *EmptyDataError) Error() string {
	return "no inventory data found"
}
