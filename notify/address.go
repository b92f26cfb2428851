package notify

import (
	"fmt"
	"regexp"

	"github.com/etnz/stockavg"
	"github.com/go-playground/validator/v10"
)

// mailboxPattern matches something@something.something without blanks.
var mailboxPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return mailboxPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateAddress checks that addr looks like an email address. It returns an
// error matching stockavg.ErrInvalidEmailFormat otherwise.
func ValidateAddress(addr string) error {
	if err := validate.Var(addr, "required,mailbox"); err != nil {
		return fmt.Errorf("%w: %q", stockavg.ErrInvalidEmailFormat, addr)
	}
	return nil
}
