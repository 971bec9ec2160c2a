package admins_test

import (
	"testing"

	"github.com/bloglane/admin-auth-server/admins"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Test1234!", wantErr: ""},
		{name: "too short", password: "short1!", wantErr: "at least 8 characters"},
		{name: "no uppercase", password: "test1234!", wantErr: "uppercase"},
		{name: "no lowercase", password: "TEST1234!", wantErr: "lowercase"},
		{name: "no number", password: "Testtest!", wantErr: "number"},
		{name: "no symbol", password: "Test12345", wantErr: "symbol"},
		{name: "disallowed character", password: "Test1234#", wantErr: "outside"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := admins.ValidatePasswordStrength(tc.password)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, admins.ValidateEmail("a@b.com"))
	require.NoError(t, admins.ValidateEmail("john.doe+tag@example.co.uk"))

	require.Error(t, admins.ValidateEmail(""))
	require.Error(t, admins.ValidateEmail("plainaddress"))
	require.Error(t, admins.ValidateEmail("no-domain@"))
	require.Error(t, admins.ValidateEmail("missing@dot"))
	require.Error(t, admins.ValidateEmail("spaces in@local.com"))
}

func TestNormalizeAndLocalPart(t *testing.T) {
	require.Equal(t, "john@example.com", admins.NormalizeEmail("  John@Example.COM "))
	require.Equal(t, "john", admins.LocalPart("john@example.com"))
	require.Equal(t, "nodomain", admins.LocalPart("nodomain"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := admins.HashPassword("Test1234!")
	require.NoError(t, err)
	require.NotEqual(t, "Test1234!", hash)

	require.True(t, admins.CheckPasswordHash("Test1234!", hash))
	require.False(t, admins.CheckPasswordHash("Test1234?", hash))
}

func TestValidateStatus(t *testing.T) {
	require.NoError(t, admins.ValidateStatus(admins.StatusActive))
	require.NoError(t, admins.ValidateStatus(admins.StatusInactive))

	require.Error(t, admins.ValidateStatus(""))
	require.Error(t, admins.ValidateStatus("banana"))
	require.Error(t, admins.ValidateStatus("Active")) // the enum is case-sensitive
}

func TestToggledStatus(t *testing.T) {
	admin := &admins.Admin{Status: admins.StatusActive}
	require.Equal(t, admins.StatusInactive, admin.ToggledStatus())

	admin.Status = admins.StatusInactive
	require.Equal(t, admins.StatusActive, admin.ToggledStatus())
}
