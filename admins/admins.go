package admins

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Status represents an admin account status
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ValidateStatus rejects any status outside the two-value enum.
func ValidateStatus(status Status) error {
	if status != StatusActive && status != StatusInactive {
		return fmt.Errorf("status must be %q or %q", StatusActive, StatusInactive)
	}
	return nil
}

// Admin is an authenticated principal of the admin panel.
type Admin struct {
	ID           string    `json:"id,omitempty"`         // Unique identifier, assigned by the store on creation
	Email        string    `json:"email,omitempty"`      // Login key, unique, stored lower-cased
	PasswordHash string    `json:"-"`                    // Hashed credential - never serialize
	Name         string    `json:"name,omitempty"`       // Display label, defaulted from the email local part
	Status       Status    `json:"status,omitempty"`     // Inactive admins may not log in
	SuperAdmin   bool      `json:"superAdmin"`           // Authority over other admins; immutable after creation
	CreatedAt    time.Time `json:"created_at,omitempty"` // When the admin was provisioned
}

// IsActive reports whether the admin is allowed to log in.
func (a *Admin) IsActive() bool {
	return a.Status != StatusInactive
}

// ToggledStatus returns the opposite of the admin's current status.
func (a *Admin) ToggledStatus() Status {
	if a.Status == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// passwordSymbols is the fixed set of symbols the password policy accepts.
const passwordSymbols = "@$!%*?&"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the email against a two-part local@domain-with-dot shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// NormalizeEmail lower-cases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LocalPart returns the part of the email before the '@', used as the default name.
func LocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// ValidatePasswordStrength checks if the password meets the policy:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
// - Contains at least one symbol from the allowed set
// - Contains no characters outside letters, digits and the allowed set
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
		hasSymbol bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		case strings.ContainsRune(passwordSymbols, char):
			hasSymbol = true
		default:
			return fmt.Errorf("password contains a character outside letters, numbers and %s", passwordSymbols)
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must contain at least one symbol from %s", passwordSymbols)
	}

	return nil
}

// ValidateName checks an explicitly supplied display name.
func ValidateName(name string) error {
	if len(name) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
