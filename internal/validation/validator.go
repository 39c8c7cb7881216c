package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// QueryDateLayouts are the accepted forms of a date query parameter, tried in order
var QueryDateLayouts = []string{"2006-01-02", time.RFC3339}

var (
	monthPattern     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	signedIntPattern = regexp.MustCompile(`^[-+]?\d{1,9}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_bucket", validateMonthBucket)
	_ = v.RegisterValidation("month_list", validateMonthList)
	_ = v.RegisterValidation("id_list", validateIDList)
	_ = v.RegisterValidation("signed_int", validateSignedInt)
	_ = v.RegisterValidation("query_date", validateQueryDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors renders validation errors as "field: message" details
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "month_bucket", "month_list":
		return "must be a comma-separated list of YYYY-MM months"
	case "id_list":
		return "must be a comma-separated list of integers"
	case "signed_int":
		return "must be an integer"
	case "query_date":
		return "must be a date in YYYY-MM-DD or RFC3339 format"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// SplitList splits a comma-separated parameter, dropping blank entries
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ParseIDList parses a comma-separated list of int64 identifiers
func ParseIDList(value string) ([]int64, error) {
	items := SplitList(value)
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", item, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseQueryDate parses a date parameter using QueryDateLayouts. Dates without
// a zone are read as UTC.
func ParseQueryDate(value string) (time.Time, error) {
	for _, layout := range QueryDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// IsMonthBucket reports whether value is a YYYY-MM month
func IsMonthBucket(value string) bool {
	return monthPattern.MatchString(value)
}

func validateMonthBucket(fl validator.FieldLevel) bool {
	return IsMonthBucket(fl.Field().String())
}

func validateMonthList(fl validator.FieldLevel) bool {
	items := SplitList(fl.Field().String())
	for _, item := range items {
		if !IsMonthBucket(item) {
			return false
		}
	}
	return true
}

func validateIDList(fl validator.FieldLevel) bool {
	_, err := ParseIDList(fl.Field().String())
	return err == nil
}

func validateSignedInt(fl validator.FieldLevel) bool {
	return signedIntPattern.MatchString(fl.Field().String())
}

func validateQueryDate(fl validator.FieldLevel) bool {
	_, err := ParseQueryDate(fl.Field().String())
	return err == nil
}
