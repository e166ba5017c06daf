package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Local-format mobile number: 10 digits starting 6-9.
var phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// Aadhaar identity document number: exactly 12 digits.
var aadharRegex = regexp.MustCompile(`^\d{12}$`)

var otpRegex = regexp.MustCompile(`^\d{6}$`)

func init() {
	validate = validator.New()
}

// Validate checks struct fields against their validate tags and returns a
// field->tag map of failures, or nil when everything passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

func IsEmail(v string) bool {
	return validate.Var(strings.TrimSpace(v), "required,email") == nil
}

func IsPhone(v string) bool {
	return phoneRegex.MatchString(NormalizePhone(v))
}

func IsAadhar(v string) bool {
	return aadharRegex.MatchString(strings.ReplaceAll(strings.TrimSpace(v), " ", ""))
}

func IsOTPCode(v string) bool {
	return otpRegex.MatchString(v)
}

// NormalizePhone strips everything but digits so "98765 43210" and
// "9876543210" compare equal.
func NormalizePhone(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
