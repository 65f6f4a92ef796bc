package middleware

import (
	"reflect"
	"strings"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the binding validator with custom tags
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// mission_status accepts any of the lifecycle status names
	_ = v.RegisterValidation("mission_status", func(fl validator.FieldLevel) bool {
		_, err := mission.ParseStatus(fl.Field().String())
		return err == nil
	})
}
