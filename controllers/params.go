package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yeremiapane/seblak-listyaning/apperr"
)

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, apperr.InvalidField(name, "must be a positive integer")
	}
	return id, nil
}

// numberField accepts only a JSON integer token. Strings, even numeric
// ones, booleans and fractions fail to decode.
type numberField struct {
	Value int
	Set   bool
}

func (n *numberField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if bytes.HasPrefix(data, []byte(`"`)) {
		return fmt.Errorf("not a number: %s", data)
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("not an integer: %s", data)
	}
	n.Value, n.Set = v, true
	return nil
}

// bindingError turns a ShouldBindJSON failure into a ValidationError with
// camelCase field keys.
func bindingError(err error, message string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.FieldErrors{typeErr.Field: "must be a " + typeErr.Type.String()}.Err(message)
		}
		return &apperr.ValidationError{Message: message + ": malformed JSON body"}
	}
	f := apperr.FieldErrors{}
	for _, fe := range verrs {
		f.Add(lowerFirst(fe.Field()), describeTag(fe))
	}
	return f.Err(message)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
