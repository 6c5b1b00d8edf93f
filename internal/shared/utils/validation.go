package utils

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

// PasswordRules validate a new password. Length counts runes, so the bcrypt
// limit is checked on bytes separately.
var PasswordRules = []validation.Rule{
	validation.Required,
	validation.Length(6, 0),
	MaxBytes(MaxPasswordBytes),
}

// MaxBytes rejects strings longer than n bytes.
func MaxBytes(n int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > n {
			return validation.NewError("validation_length_too_long", fmt.Sprintf("the length must be no more than %d bytes", n))
		}
		return nil
	})
}

// IsValidEmail reports whether email is syntactically valid.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return is.EmailFormat.Validate(email) == nil
}
