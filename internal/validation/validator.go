package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/shopspring/decimal"
)

// URLPattern is the shape required of website and application URLs.
var URLPattern = regexp.MustCompile(`^(https?://).*`)

// Validator checks transfer objects and reports failures keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterValidation("httpurl", validateHTTPURL)

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(optionalValue,
		dtos.Optional[string]{},
		dtos.Optional[uint]{},
		dtos.Optional[int]{},
		dtos.Optional[bool]{},
		dtos.Optional[time.Time]{},
		dtos.Optional[decimal.Decimal]{},
		dtos.Optional[models.JobType]{},
		dtos.Optional[models.ExperienceLevel]{},
		dtos.Optional[models.RemoteOption]{},
	)

	v.RegisterStructValidation(salaryRangeStructLevel, dtos.JobCreateRequest{}, dtos.JobUpdateRequest{})

	return &Validator{validate: v}
}

// Struct validates s and returns the failures as field -> message. A nil map
// means s is valid.
func (v *Validator) Struct(s any) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, exists := fields[name]; exists {
			continue
		}
		fields[name] = message(fe)
	}
	return fields, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "httpurl":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "gt":
		if fe.Type() == reflect.TypeOf(time.Time{}) {
			return fmt.Sprintf("%s must be in the future", fe.Field())
		}
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must not be negative", fe.Field())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "salaryrange":
		return SalaryRangeMessage
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	return URLPattern.MatchString(fl.Field().String())
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// optionalValue exposes an Optional as a *T so omitempty skips absent fields
// and the remaining tags see the wrapped value.
func optionalValue(field reflect.Value) interface{} {
	if o, ok := field.Interface().(interface{ Pointer() any }); ok {
		return o.Pointer()
	}
	return nil
}
