package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	accessTokenSecret  []byte
	refreshTokenSecret []byte
)

// SetTokenSecrets overrides the signing keys, mainly for tests.
func SetTokenSecrets(access, refresh string) {
	accessTokenSecret = []byte(access)
	refreshTokenSecret = []byte(refresh)
}

// AccessSecret returns the access-token signing key, read from the
// environment on first use.
func AccessSecret() []byte {
	if len(accessTokenSecret) == 0 {
		accessTokenSecret = []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
	}
	return accessTokenSecret
}

// RefreshSecret returns the refresh-token signing key, read from the
// environment on first use.
func RefreshSecret() []byte {
	if len(refreshTokenSecret) == 0 {
		refreshTokenSecret = []byte(os.Getenv("REFRESH_TOKEN_SECRET"))
	}
	return refreshTokenSecret
}

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Claims represents JWT claims.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateTokens creates a signed access/refresh token pair sharing a JTI.
func GenerateTokens(userID uuid.UUID) (string, string, string, error) {
	jti := uuid.NewString()

	accessClaims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
		},
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessString, err := accessToken.SignedString(AccessSecret())
	if err != nil {
		return "", "", "", err
	}

	refreshClaims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(RefreshTokenTTL)),
		},
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshString, err := refreshToken.SignedString(RefreshSecret())
	if err != nil {
		return "", "", "", err
	}

	return accessString, refreshString, jti, nil
}

// VerifyJWT parses and validates a JWT string.
func VerifyJWT(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
