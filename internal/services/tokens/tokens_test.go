package tokens

import (
	"testing"
	"time"

	"github.com/findosh/advisor/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(ttl time.Duration) *models.Session {
	return &models.Session{
		ID:        uuid.New(),
		Profile:   &models.UserProfile{Name: "Asha"},
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestIssueAndValidate(t *testing.T) {
	issuer := NewIssuer("secret")
	s := session(time.Hour)

	token, err := issuer.Issue(s)
	require.NoError(t, err)

	id, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, id)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret").Issue(session(time.Hour))
	require.NoError(t, err)

	_, err = NewIssuer("other").Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	issuer := NewIssuer("secret")
	token, err := issuer.Issue(session(-time.Minute))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, models.ErrSessionExpired)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewIssuer("secret").Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_BadSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewIssuer("secret").Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("secret").Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
