package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 150
	MinPasswordLen = 8
)

// commonPasswords are rejected outright, whatever their length.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwertyuiop":  {},
	"azertyuiop":  {},
	"iloveyou":    {},
	"sunshine":    {},
	"football":    {},
	"baseball":    {},
	"welcome1":    {},
	"letmein1":    {},
	"motdepasse":  {},
	"starauto":    {},
}

// Validator checks account fields before they reach the store.
type Validator interface {
	ValidateRegister(username, email, password string) error
	ValidateUsername(username string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

// AccountValidator applies the registration rules of the dealership site:
// Django style usernames and the default Django password checks
// (length, common list, all digits, similarity to the account).
type AccountValidator struct{}

func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

// ValidateRegister checks a self-service sign-up. The password is also
// compared against the username and the local part of the email.
func (v *AccountValidator) ValidateRegister(username, email, password string) error {
	if err := v.ValidateUsername(username); err != nil {
		return fmt.Errorf("username: %w", err)
	}

	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	local, _, _ := strings.Cut(email, "@")
	if err := validatePassword(password, username, local); err != nil {
		return fmt.Errorf("password: %w", err)
	}

	return nil
}

// ValidateUsername accepts letters, digits and @ . + - _ like a Django username.
func (v *AccountValidator) ValidateUsername(username string) error {
	n := len([]rune(username))
	if n < MinUsernameLen {
		return fmt.Errorf("must be at least %d characters", MinUsernameLen)
	}
	if n > MaxUsernameLen {
		return fmt.Errorf("must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("@.+-_", r) {
			return fmt.Errorf("may contain only letters, digits and @/./+/-/_")
		}
	}

	return nil
}

// ValidateEmail требует голый адрес без имени
func (v *AccountValidator) ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("must be a plain address like name@example.com")
	}
	return nil
}

func (v *AccountValidator) ValidatePassword(password string) error {
	return validatePassword(password)
}

func validatePassword(password string, attrs ...string) error {
	if len([]rune(password)) < MinPasswordLen {
		return fmt.Errorf("this password is too short, it must contain at least %d characters", MinPasswordLen)
	}

	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return fmt.Errorf("this password is too common")
	}

	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return fmt.Errorf("this password is entirely numeric")
	}

	for _, attr := range attrs {
		attr = strings.ToLower(attr)
		if len(attr) < MinUsernameLen {
			continue
		}
		if strings.Contains(lower, attr) || strings.Contains(attr, lower) {
			return fmt.Errorf("this password is too similar to the account details")
		}
	}

	return nil
}
