package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-at-least-32-bytes-long!!")

func TestIssueAndParse(t *testing.T) {
	token, err := IssueToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	userID, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := IssueToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	expired, err := IssueToken(testSecret, 42, -time.Minute)
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	foreignToken, err := foreign.SignedString(testSecret)
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   "did:plc:abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	badSubjectToken, err := badSubject.SignedString(testSecret)
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:  Issuer,
		Subject: "42",
	}})
	noExpiryToken, err := noExpiry.SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret []byte
		token  string
	}{
		{"wrong secret", []byte("another-secret"), valid},
		{"expired", testSecret, expired},
		{"wrong issuer", testSecret, foreignToken},
		{"non numeric subject", testSecret, badSubjectToken},
		{"no expiry", testSecret, noExpiryToken},
		{"garbage", testSecret, "not-a-jwt"},
		{"no secret", nil, valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, unsigned)
	assert.Error(t, err)
}

func TestIssueToken_Invalid(t *testing.T) {
	_, err := IssueToken(nil, 42, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = IssueToken(testSecret, 0, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidSubject)
}
