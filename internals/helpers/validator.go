package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidateStruct: jalankan validator.v10 lalu kirim 422 dengan peta field error.
// Return nil artinya lolos validasi.
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := Validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "invalid input")
		}
		fields := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
		}
		return JsonValidationError(c, fields)
	}
	return nil
}
