// Package auth is the simulated sign-in provider: an in-memory user
// registry with bcrypt-hashed passwords and a locally minted session token.
// There is no real identity service behind it; the rest of the engine only
// ever reads the resulting role.
package auth

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
	"github.com/MuhammadYaafay/storefront-core/securestore"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistrationFailed = errors.New("registration failed")
)

// Fixed secure-store keys, matching what the app persisted.
const (
	tokenKey = "token"
	userKey  = "user"
)

type registered struct {
	user models.User
	hash []byte
}

type Provider struct {
	mu      sync.Mutex
	secret  []byte
	ttl     time.Duration
	store   *securestore.Store
	users   map[string]registered // keyed by lower-case email
	current *models.User
	token   string
	bus     *events.Bus
}

func NewProvider(secret string, ttl time.Duration, store *securestore.Store, bus *events.Bus) *Provider {
	return &Provider{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		users:  make(map[string]registered),
		bus:    bus,
	}
}

// SeedUser registers an account without signing it in; used for the demo
// accounts the storefront ships with.
func (p *Provider) SeedUser(email, password, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.registerLocked(email, password, name)
	return err
}

// Register creates an account and signs it in. Duplicate emails and blank
// fields fail registration.
func (p *Provider) Register(email, password, name string) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	user, err := p.registerLocked(email, password, name)
	if err != nil {
		p.bus.Error("Registration failed", "")
		return nil, err
	}
	if err := p.startSessionLocked(user); err != nil {
		return nil, err
	}
	p.bus.Success("Welcome!", "Account created for "+user.Email)
	return p.current, nil
}

func (p *Provider) registerLocked(email, password, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || name == "" {
		return models.User{}, ErrRegistrationFailed
	}
	if _, exists := p.users[email]; exists {
		return models.User{}, ErrRegistrationFailed
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrRegistrationFailed
	}
	user := models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  roleFor(email),
	}
	p.users[email] = registered{user: user, hash: hash}
	return user, nil
}

// Login verifies the password against the registry and starts a session.
func (p *Provider) Login(email, password string) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	reg, ok := p.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok || bcrypt.CompareHashAndPassword(reg.hash, []byte(password)) != nil {
		p.bus.Error("Login failed", "Invalid email or password")
		return nil, ErrInvalidCredentials
	}
	if err := p.startSessionLocked(reg.user); err != nil {
		return nil, err
	}
	p.bus.Success("Welcome back!", reg.user.Name)
	return p.current, nil
}

func (p *Provider) startSessionLocked(user models.User) error {
	token, err := p.issueToken(user)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := p.store.Set(tokenKey, token); err != nil {
		return err
	}
	if err := p.store.Set(userKey, string(blob)); err != nil {
		return err
	}
	u := user
	p.current = &u
	p.token = token
	return nil
}

// Restore reloads a persisted session at process start. An absent, expired
// or tampered token simply means no session; the stale keys are cleared.
func (p *Provider) Restore() (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	token, ok, err := p.store.Get(tokenKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	blob, ok, err := p.store.Get(userKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.clearSessionLocked()
	}

	if _, err := p.parseToken(token); err != nil {
		return nil, p.clearSessionLocked()
	}
	var user models.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		return nil, p.clearSessionLocked()
	}

	p.current = &user
	p.token = token
	return p.current, nil
}

// Logout ends the session and deletes the persisted keys.
func (p *Provider) Logout() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.clearSessionLocked(); err != nil {
		return err
	}
	p.bus.Info("Signed out", "")
	return nil
}

func (p *Provider) clearSessionLocked() error {
	p.current = nil
	p.token = ""
	if err := p.store.Delete(tokenKey); err != nil {
		return err
	}
	return p.store.Delete(userKey)
}

// Current returns the signed-in user, or nil.
func (p *Provider) Current() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	u := *p.current
	return &u
}

// Token returns the active session token, empty when signed out.
func (p *Provider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// roleFor keeps the app's demo convention: an email containing "admin"
// gets the admin role.
func roleFor(email string) models.Role {
	if strings.Contains(email, "admin") {
		return models.RoleAdmin
	}
	return models.RoleCustomer
}
