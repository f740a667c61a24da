package stores

import (
	"sync"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// LoginPath is where unauthenticated navigation is sent.
const LoginPath = "/login"

// authCheckResponse mirrors the /auth/check payload.
type authCheckResponse struct {
	Nome    string `json:"nome"`
	FotoURL string `json:"foto_url"`
	Ruolo   string `json:"ruolo"`
}

// AuthStore holds the current session. Authenticated is only ever set
// by a completed CheckAuth call; callers must have invoked CheckAuth at
// least once before trusting it.
type AuthStore struct {
	mu            sync.Mutex
	client        *services.Client
	user          *models.SessionUser
	authenticated bool
}

// NewAuthStore creates a new auth store instance
func NewAuthStore(client *services.Client) *AuthStore {
	return &AuthStore{client: client}
}

// CheckAuth calls the session-check endpoint. On any failure the local
// user state is cleared and false is returned; on success the session
// user is populated from the response.
func (s *AuthStore) CheckAuth() bool {
	var reply authCheckResponse
	err := s.client.Get("/auth/check", nil, &reply)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.user = nil
		s.authenticated = false
		return false
	}

	s.user = &models.SessionUser{
		Nome:  reply.Nome,
		Foto:  reply.FotoURL,
		Ruolo: reply.Ruolo,
	}
	s.authenticated = true
	return true
}

// Logout clears the local session and returns the login destination.
// It does not call a server-side logout endpoint.
func (s *AuthStore) Logout() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	return LoginPath
}

// User returns the session user, or nil before a successful CheckAuth.
func (s *AuthStore) User() *models.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports the flag set by the last CheckAuth call.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}
