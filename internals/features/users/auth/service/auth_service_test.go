package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignTokenClaims(t *testing.T) {
	svc := &AuthService{Secret: "test-secret"}

	raw, err := svc.signToken("abc-123", "teacher@school.test", "teacher")
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		assert.Equal(t, "HS256", tok.Method.Alg())
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "abc-123", claims["sub"])
	assert.Equal(t, "teacher@school.test", claims["email"])
	assert.Equal(t, "teacher", claims["role"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	iat := time.Unix(int64(claims["iat"].(float64)), 0)
	assert.Equal(t, 7*24*time.Hour, exp.Sub(iat))
}

func TestSignTokenRejectsWrongSecret(t *testing.T) {
	svc := &AuthService{Secret: "right"}
	raw, err := svc.signToken("abc", "a@b.c", "student")
	require.NoError(t, err)

	_, err = jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		return []byte("wrong"), nil
	})
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("wrong")))
}
