package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const invalidFieldsPrefix = "The following fields were invalid: "

var requestValidate *validator.Validate

// fieldMessages maps "<json field>.<tag>" to the message shown to clients.
var fieldMessages = map[string]string{
	"text.required": "field [text] can't be null",
	"word.required": "field [word] can't be null",
	"n.min":         "field [n] can't be smaller than 1",
}

func init() {
	requestValidate = validator.New()

	// report json names so messages line up with the request body
	requestValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError lists every request field that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return invalidFieldsPrefix + strings.Join(e.Fields, ", ")
}

// validateRequest runs the validate tags of req and converts failures into a
// *ValidationError.
func validateRequest(req any) error {
	err := requestValidate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return &ValidationError{Fields: messages}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("field [%s] failed the '%s' check", fe.Field(), fe.Tag())
}
