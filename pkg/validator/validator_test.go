package validator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string  `json:"name" validate:"required"`
	Age    *int    `json:"age" validate:"required,gte=0"`
	Status string  `json:"status" validate:"omitempty,oneof=scheduled confirmed"`
	Note   *string `json:"note" validate:"omitempty,min=1"`
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "age is required", errs["age"])
	assert.Len(t, errs, 2)
}

func TestValidate_OptionalPointerSkippedWhenAbsent(t *testing.T) {
	v := NewValidator()
	age := 30

	err := v.Validate(&sampleRequest{Name: "Alice", Age: &age})
	assert.NoError(t, err)
}

func TestValidate_OneOf(t *testing.T) {
	v := NewValidator()
	age := 30

	err := v.Validate(&sampleRequest{Name: "Alice", Age: &age, Status: "bogus"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "status must be one of: scheduled confirmed", errs["status"])
}

func TestFormatDecodeError_TypeMismatch(t *testing.T) {
	v := NewValidator()

	var req sampleRequest
	err := json.NewDecoder(strings.NewReader(`{"name": "Alice", "age": "thirty"}`)).Decode(&req)
	require.Error(t, err)

	errs := v.FormatDecodeError(err)
	assert.Equal(t, map[string]string{"age": "age must be a number"}, errs)
}

func TestFormatDecodeError_SyntaxError(t *testing.T) {
	v := NewValidator()

	var req sampleRequest
	err := json.NewDecoder(strings.NewReader(`{"name": `)).Decode(&req)
	require.Error(t, err)

	assert.Nil(t, v.FormatDecodeError(err))
}
