package web

import (
	"errors"
	"fmt"
)

var ErrPanic = errors.New("recovered from panic")

type inputError struct {
	fields map[string][]string
}

func newInputError() *inputError {
	return &inputError{
		fields: make(map[string][]string),
	}
}

func (ie *inputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *inputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *inputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}
