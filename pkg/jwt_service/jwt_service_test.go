package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/challenger/internal/api"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/pkg/entity"
	jwtservice "github.com/limbo/challenger/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	serv := jwtservice.New("test_secret")
	user := &entity.User{ID: uuid.New(), Email: "a@b.test", Username: "alice"}
	token, err := serv.GenerateToken(user)
	require.NoError(t, err)

	claims, err := serv.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@b.test", claims.Email)
}

func TestParseInvalid(t *testing.T) {
	serv := jwtservice.New("test_secret")
	other := jwtservice.New("other_secret")
	foreign, err := other.GenerateToken(&entity.User{ID: uuid.New()})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &api.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "wrong secret", Token: foreign},
		{Desc: "expired", Token: expired},
		{Desc: "garbage", Token: "not.a.token"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := serv.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
