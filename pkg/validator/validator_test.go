package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=admin manager staff"`
}

func TestValidateStruct_Valido(t *testing.T) {
	errs := ValidateStruct(loginForm{Username: "maria", Password: "secreta123"})
	assert.Empty(t, errs)
}

func TestValidateStruct_CamposFaltantes(t *testing.T) {
	errs := ValidateStruct(loginForm{})
	require.Len(t, errs, 2)
	assert.Equal(t, "loginForm.Username", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "loginForm.Password", errs[1].FailedField)
}

func TestValidateStruct_OneofInvalido(t *testing.T) {
	errs := ValidateStruct(loginForm{Username: "maria", Password: "secreta123", Role: "root"})
	require.Len(t, errs, 1)
	assert.Equal(t, "oneof", errs[0].Tag)
	assert.Equal(t, "admin manager staff", errs[0].Value)
}
