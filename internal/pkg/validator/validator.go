package validator

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Required collects one error per empty value. order fixes the reporting
// order since map iteration is not stable.
func Required(order []string, fields map[string]string) ValidationErrors {
	var errs ValidationErrors
	for _, name := range order {
		if IsEmpty(fields[name]) {
			errs = append(errs, ValidationError{
				Field:   name,
				Message: name + " is required",
			})
		}
	}
	return errs
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var numericRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsNumeric checks for a plain decimal number.
func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

var ddmmyyyyRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// IsValidDDMMYYYY checks the DD/MM/YYYY shape the sheets use for leave
// dates. It does not range-check the day or month.
func IsValidDDMMYYYY(s string) bool {
	return ddmmyyyyRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
