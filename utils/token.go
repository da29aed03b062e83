package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Actor kind claim values. Citizen and municipal sessions are disjoint: a
// token always carries exactly one kind.
const (
	KindCitizen   = "citizen"
	KindMunicipal = "municipal"
)

// GenerateToken signs an HS256 token for the given subject. The subject is a
// profile id for citizen tokens and a team id for municipal tokens.
func GenerateToken(subjectID, actorKind string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subjectID,
		"actor": actorKind,
		"exp":   time.Now().Add(time.Hour * 72).Unix(), // Token expires in 72 hours
	})

	return token.SignedString([]byte(secretStr))
}

// ParseToken validates a token and returns its subject id and actor kind.
func ParseToken(tokenString string) (subjectID, actorKind string, err error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretStr), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", fmt.Errorf("token missing subject claim")
	}
	actor, ok := claims["actor"].(string)
	if !ok || (actor != KindCitizen && actor != KindMunicipal) {
		return "", "", fmt.Errorf("token missing actor claim")
	}

	return sub, actor, nil
}
