package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Errors returned by the token helpers in addition to the jwt/v5 sentinels
// (jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid, ...), which are always
// kept in the chain so that callers can classify failures with errors.Is.
var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrInvalidSubject     = errors.New("token subject is not a user id")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a decimal string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns [ErrInvalidTokenParams] if the issuer
// or key is empty or the duration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-task-keeper", 42, 24*time.Hour, secret)
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - algorithm check: only HS256 is accepted
//   - signature verification using signKey
//   - issuer (iss) check against tokenIssuer
//   - expiration (exp) presence and check
//   - subject (sub) presence and conversion to an int64 user id
//
// On failure the returned error wraps the matching jwt/v5 sentinel, or
// [ErrInvalidSubject] for a bad subject.
func ValidateAndParseJWTToken(tokenString string, signKey []byte, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSubject, err)
	}

	return models.Token{
		RegisteredClaims: parsed.RegisteredClaims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}
