package services

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dmitrijs2005/apikeeper/internal/common"
)

// UserRegistration is the trimmed input of RegisterUser.
type UserRegistration struct {
	FirstName string
	LastName  string
	Email     string
}

func (r UserRegistration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.EmailFormat),
	)
}

// AdminCredentials is the input of RegisterAdmin and Login.
type AdminCredentials struct {
	Email    string
	Password string
}

// ValidateForRegistration applies the password policy; bcrypt ignores
// anything past 72 bytes so longer passwords are refused.
func (c AdminCredentials) ValidateForRegistration() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, validation.Length(3, 255), is.EmailFormat),
		validation.Field(&c.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (c AdminCredentials) ValidateForLogin() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", common.ErrBadRequest, err)
}
