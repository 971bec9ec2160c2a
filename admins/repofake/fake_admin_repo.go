package repofake

import (
	"sort"
	"sync"

	"github.com/bloglane/admin-auth-server/admins"
	"github.com/google/uuid"
)

var _ admins.Repo = (*FakeAdminRepo)(nil)

// FakeAdminRepo is an in-memory implementation of admins.Repo used in
// tests and local development.
type FakeAdminRepo struct {
	admins   map[string]*admins.Admin
	emailIds map[string]string // normalized email to admin id
	lock     sync.RWMutex
}

func NewFakeAdminRepo() *FakeAdminRepo {
	return &FakeAdminRepo{
		admins:   make(map[string]*admins.Admin),
		emailIds: make(map[string]string),
	}
}

func (ar *FakeAdminRepo) Create(admin *admins.Admin) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	email := admins.NormalizeEmail(admin.Email)
	if _, exists := ar.emailIds[email]; exists {
		return admins.ErrDuplicateEmail
	}
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.Email = email

	stored := *admin
	ar.admins[admin.ID] = &stored
	ar.emailIds[email] = admin.ID
	return nil
}

func (ar *FakeAdminRepo) Update(admin *admins.Admin) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	existing, ok := ar.admins[admin.ID]
	if !ok {
		return admins.ErrNotFound
	}
	if existing.Email != admins.NormalizeEmail(admin.Email) {
		delete(ar.emailIds, existing.Email)
		ar.emailIds[admins.NormalizeEmail(admin.Email)] = admin.ID
	}

	stored := *admin
	stored.Email = admins.NormalizeEmail(admin.Email)
	ar.admins[admin.ID] = &stored
	return nil
}

func (ar *FakeAdminRepo) GetByID(id string) (*admins.Admin, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	admin, ok := ar.admins[id]
	if !ok {
		return nil, admins.ErrNotFound
	}
	copied := *admin
	return &copied, nil
}

func (ar *FakeAdminRepo) GetByEmail(email string) (*admins.Admin, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	id, ok := ar.emailIds[admins.NormalizeEmail(email)]
	if !ok {
		return nil, admins.ErrNotFound
	}
	copied := *ar.admins[id]
	return &copied, nil
}

func (ar *FakeAdminRepo) ListNonSuper() ([]*admins.Admin, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	list := make([]*admins.Admin, 0)
	for _, admin := range ar.admins {
		if admin.SuperAdmin {
			continue
		}
		copied := *admin
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })
	return list, nil
}

func (ar *FakeAdminRepo) Count() (int, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()
	return len(ar.admins), nil
}
