package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogapi/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(42, model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID, "token must carry a JTI for logout invalidation")
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(1, model.RoleUser)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService("test-secret")

	a, err := svc.GenerateToken(1, model.RoleUser)
	assert.NoError(t, err)
	b, err := svc.GenerateToken(1, model.RoleUser)
	assert.NoError(t, err)

	claimsA, _ := svc.ValidateToken(a)
	claimsB, _ := svc.ValidateToken(b)
	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
