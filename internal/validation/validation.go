// Package validation wraps go-playground/validator with the rules of the
// booking forms and renders failures as field-keyed messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

var (
	phonePattern = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, domain.PhoneDigits))
	// намеренно мягкая проверка: <не пробел>@<не пробел>.<не пробел>
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	for tag, fn := range customValidations {
		mustRegister(v, tag, fn)
	}

	return v
}

// customValidations теги, которые добавляются к встроенным правилам validator
var customValidations = map[string]validator.Func{
	"phone10": func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	},
	"looseemail": func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	},
	"hour": func(fl validator.FieldLevel) bool {
		return domain.IsValidHour(int(fl.Field().Int()))
	},
	"isodate": func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	},
}

// mustRegister регистрирует правило и паникует при ошибке, как regexp.MustCompile
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// FieldErrors ошибки валидации формы, ключ - имя поля
type FieldErrors map[string]string

// Error implements the error interface
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match any FieldErrors against ErrValidation
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// ErrValidation общая метка ошибок валидации
var ErrValidation = errors.New("validation failed")

type customerForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"phone10"`
	Email string `json:"email" validate:"looseemail"`
}

// ValidateCustomer проверяет поля формы контактов.
// Имя проверяется после обрезки пробелов. Возвращает nil, если ошибок нет.
func ValidateCustomer(d domain.CustomerDetails) FieldErrors {
	form := customerForm{
		Name:  strings.TrimSpace(d.Name),
		Phone: d.Phone,
		Email: d.Email,
	}
	return Struct(form)
}

// IsValidPhone проверяет, что строка состоит ровно из 10 цифр
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidEmail мягкая синтаксическая проверка адреса почты
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsDate проверяет формат YYYY-MM-DD
func IsDate(s string) bool {
	_, err := parseDate(s)
	return err == nil
}

// Struct валидирует структуру по тегам validate.
// Возвращает nil, если ошибок нет.
func Struct(v interface{}) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Field() == domain.FieldName {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "phone10":
		return fmt.Sprintf("must be exactly %d digits", domain.PhoneDigits)
	case "looseemail":
		return "must be a valid email address"
	case "hour":
		return fmt.Sprintf("must be an hour between %d and %d", domain.MinHour, domain.MaxHour)
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
