package admins

import "errors"

// ErrNotFound is returned by repos when an admin does not resolve.
var ErrNotFound = errors.New("admin not found")

// ErrDuplicateEmail is returned by repos when the email uniqueness
// constraint is violated at persistence time.
var ErrDuplicateEmail = errors.New("email already exists")

// Repo defines the interface for admin storage operations.
// Emails are matched case-insensitively; implementations must enforce a
// uniqueness constraint on email so concurrent Create calls cannot both
// succeed.
type Repo interface {
	// Create persists a new admin, assigning an ID if empty.
	Create(admin *Admin) error

	// Update persists changes to an existing admin.
	Update(admin *Admin) error

	// GetByID retrieves an admin by ID
	GetByID(id string) (*Admin, error)

	// GetByEmail retrieves an admin by (normalized) email
	GetByEmail(email string) (*Admin, error)

	// ListNonSuper returns all admins with SuperAdmin == false
	ListNonSuper() ([]*Admin, error)

	// Count returns the total number of admins
	Count() (int, error)
}
