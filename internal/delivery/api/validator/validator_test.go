package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Items  []string `json:"items" validate:"required,min=1,max=3,dive,required"`
	Amount string   `json:"amount" validate:"required"`
	Mode   string   `json:"mode" validate:"omitempty,oneof=a b"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Items: []string{"x"}, Amount: "1.00"}))

	err := v.Validate(&sampleRequest{Mode: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items is required")
	assert.Contains(t, err.Error(), "amount is required")
	assert.Contains(t, err.Error(), "mode must be one of [a b]")

	err = v.Validate(&sampleRequest{Items: []string{"1", "2", "3", "4"}, Amount: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items must satisfy max=3")
}
