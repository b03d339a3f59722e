package services

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/pixelforge/studio-console/internal/models"
)

var (
	ErrUnknownRole = errors.New("unknown role")
)

// SentinelEmployeeID is the demo employee badge number. Logging in with it
// yields a fixed display name instead of the generic employee default.
const SentinelEmployeeID = "EMP001"

const sentinelEmployeeName = "John Doe (Employee)"

var defaultNames = map[models.Role]string{
	models.RoleAdmin:    "Admin User",
	models.RoleClient:   "Client User",
	models.RoleEmployee: "Employee User",
}

// SessionService constructs and validates session identities. The identity
// itself is persisted by the HTTP layer in the session cookie; this service
// owns only the construction and (de)serialization rules.
type SessionService struct{}

// NewSessionService creates a new SessionService.
func NewSessionService() *SessionService {
	return &SessionService{}
}

// Login builds a fresh identity for the given email and role. The id is
// generated here and stays stable for the session's lifetime; the role is
// immutable until logout.
func (s *SessionService) Login(email string, role models.Role) (models.Identity, error) {
	name, ok := defaultNames[role]
	if !ok {
		return models.Identity{}, ErrUnknownRole
	}

	if role == models.RoleEmployee && email == SentinelEmployeeID {
		name = sentinelEmployeeName
	}

	return models.Identity{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}

// Encode serializes an identity for the session store.
func (s *SessionService) Encode(identity models.Identity) (string, error) {
	raw, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode restores an identity from its persisted form. Malformed payloads,
// missing ids and unknown roles all fail safe to the anonymous identity
// rather than surfacing a parse error.
func (s *SessionService) Decode(raw string) models.Identity {
	var identity models.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return models.Anonymous()
	}
	if identity.ID == "" || !identity.Role.Valid() || identity.Role == models.RoleNone {
		return models.Anonymous()
	}
	return identity
}
