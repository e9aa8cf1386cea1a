package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// SupportedFontFamilies lists the families the certificate renderer ships with.
var SupportedFontFamilies = []string{
	"Georgia",
	"Times New Roman",
	"Garamond",
	"Playfair Display",
	"Merriweather",
	"Arial",
	"Helvetica",
	"Montserrat",
	"Open Sans",
	"Roboto",
	"Lato",
}

var rgbHexRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

const (
	TOTPCodeLength    = 6
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

func IsSupportedFontFamily(family string) bool {
	for _, f := range SupportedFontFamilies {
		if strings.EqualFold(f, family) {
			return true
		}
	}
	return false
}

// ValidateFontFamily backs the "fontfamily" tag.
func ValidateFontFamily(fl validator.FieldLevel) bool {
	return IsSupportedFontFamily(fl.Field().String())
}

// ValidateTOTPCode backs the "totpcode" tag: exactly six ASCII digits.
func ValidateTOTPCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != TOTPCodeLength {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidateRGBHex backs the "rgbhex" tag: #rgb or #rrggbb, no alpha channel.
func ValidateRGBHex(fl validator.FieldLevel) bool {
	return rgbHexRegex.MatchString(fl.Field().String())
}

// ValidateStrongPassword backs the "strongpassword" tag. A password needs an
// upper and a lower case letter, a digit and a symbol.
func ValidateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsNumber(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("fontfamily", ValidateFontFamily)
	v.RegisterValidation("rgbhex", ValidateRGBHex)
	v.RegisterValidation("totpcode", ValidateTOTPCode)
	v.RegisterValidation("strongpassword", ValidateStrongPassword)
}
