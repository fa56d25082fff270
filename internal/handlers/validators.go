package handlers

import (
	"time"

	"github.com/cherryfin/loanledger/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators adds the binding validators used by the request DTOs.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(dto.DateFormat, fl.Field().String())
			return err == nil
		})
	}
}
