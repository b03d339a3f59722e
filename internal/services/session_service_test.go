package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-console/internal/models"
)

func TestSessionService_Login(t *testing.T) {
	svc := NewSessionService()

	identity, err := svc.Login("a@b.com", models.RoleClient)
	require.NoError(t, err)
	require.NotEmpty(t, identity.ID)
	require.Equal(t, "Client User", identity.Name)
	require.Equal(t, "a@b.com", identity.Email)
	require.Equal(t, models.RoleClient, identity.Role)

	// Each login mints a fresh id
	second, err := svc.Login("a@b.com", models.RoleClient)
	require.NoError(t, err)
	require.NotEqual(t, identity.ID, second.ID)
}

func TestSessionService_LoginEmployeeSentinel(t *testing.T) {
	svc := NewSessionService()

	sentinel, err := svc.Login(SentinelEmployeeID, models.RoleEmployee)
	require.NoError(t, err)
	require.Equal(t, "John Doe (Employee)", sentinel.Name)

	generic, err := svc.Login("x@y.com", models.RoleEmployee)
	require.NoError(t, err)
	require.Equal(t, "Employee User", generic.Name)
}

func TestSessionService_LoginSentinelOnlyForEmployees(t *testing.T) {
	svc := NewSessionService()

	identity, err := svc.Login(SentinelEmployeeID, models.RoleClient)
	require.NoError(t, err)
	require.Equal(t, "Client User", identity.Name)
}

func TestSessionService_LoginUnknownRole(t *testing.T) {
	svc := NewSessionService()

	_, err := svc.Login("a@b.com", models.RoleNone)
	require.ErrorIs(t, err, ErrUnknownRole)

	_, err = svc.Login("a@b.com", models.Role("superuser"))
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestSessionService_EncodeDecodeRoundTrip(t *testing.T) {
	svc := NewSessionService()

	identity, err := svc.Login("a@b.com", models.RoleClient)
	require.NoError(t, err)

	encoded, err := svc.Encode(identity)
	require.NoError(t, err)

	restored := svc.Decode(encoded)
	require.Equal(t, identity, restored)
}

func TestSessionService_DecodeMalformed(t *testing.T) {
	svc := NewSessionService()

	tests := []string{
		"",
		"not json",
		`{"id":"x","role":`, // truncated
		`{"name":"no id","role":"client"}`,
		`{"id":"x","role":"superuser"}`,
		`{"id":"x","role":"none"}`,
	}

	for _, raw := range tests {
		identity := svc.Decode(raw)
		require.Equal(t, models.RoleNone, identity.Role, "payload %q", raw)
		require.Empty(t, identity.ID)
	}
}
