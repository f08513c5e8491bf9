package handlers

import (
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the domain enum validators used by the
// binding tags on request DTOs.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
		switch domain.TransactionType(fl.Field().String()) {
		case domain.Income, domain.Expense, domain.DebtTaken, domain.DebtRepaid, domain.Other:
			return true
		}
		// TRANSFER_IN/TRANSFER_OUT legs are materialized by the transfer
		// endpoint, never posted directly.
		return false
	})

	v.RegisterValidation("accountkind", func(fl validator.FieldLevel) bool {
		switch domain.AccountKind(fl.Field().String()) {
		case domain.Bank, domain.Cash, domain.MobileMoney:
			return true
		}
		return false
	})

	v.RegisterValidation("cptyrole", func(fl validator.FieldLevel) bool {
		switch domain.CounterpartyRole(fl.Field().String()) {
		case domain.RoleVendor, domain.RoleCustomer:
			return true
		}
		return false
	})
}
