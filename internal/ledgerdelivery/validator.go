package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-denis/vault-ledger/pkg/addresspkg"
)

// ValidAddress validates hex account addresses.
var ValidAddress validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if addr, ok := fieldLevel.Field().Interface().(string); ok {
		return addresspkg.Valid(addr)
	}

	return false
}
