package repository

import (
	"context"
	"sort"
	"sync"

	"employee-attendance/models"
)

type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User

	// FailCreate makes CreateUser fail with a StoreError.
	FailCreate error
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		return models.NewStoreError("create user profile", r.FailCreate)
	}
	for _, u := range r.users {
		if u.EmployeeID == user.EmployeeID {
			return models.ErrEmployeeIDInUse
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindUserByID(ctx context.Context, uid string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if NormalizeEmail(u.Email) == NormalizeEmail(email) {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].EmployeeID < users[j].EmployeeID })
	return users, nil
}

func (r *MemoryUserRepository) CountUsers(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

type MemoryCredentialRepository struct {
	mu    sync.Mutex
	creds map[string]models.Credential
}

func NewMemoryCredentialRepository() *MemoryCredentialRepository {
	return &MemoryCredentialRepository{creds: make(map[string]models.Credential)}
}

func (r *MemoryCredentialRepository) CreateCredential(ctx context.Context, cred *models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cred.Email = NormalizeEmail(cred.Email)
	for _, c := range r.creds {
		if c.Email == cred.Email {
			return models.ErrEmailInUse
		}
	}
	r.creds[cred.ID] = *cred
	return nil
}

func (r *MemoryCredentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = NormalizeEmail(email)
	for _, c := range r.creds {
		if c.Email == email {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryCredentialRepository) DeleteCredential(ctx context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.creds, uid)
	return nil
}

// Len reports how many credentials are stored.
func (r *MemoryCredentialRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.creds)
}
