package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"time"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})
	return v
}

// Validate : проверяет конфигурацию по тегам и дополнительным правилам
func Validate(cfg *AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	if cfg.SMTP.Host != "" && cfg.SMTP.From == "" {
		return fmt.Errorf("smtp.from: обязателен при заданном smtp.host")
	}

	if cfg.S3.Local && (cfg.S3.AccessKey == "" || cfg.S3.SecretKey == "") {
		return fmt.Errorf("s3: для локального хранилища нужны access_key и secret_key")
	}

	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: не пройдена проверка '%s' (значение: %v)", e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
