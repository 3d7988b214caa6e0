package auth

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type User struct {
	ID string `json:"id"`
}

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-secret")
}

func GenerateToken(user User, userType string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   user.ID,
		"userType": userType,
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(secret())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// parseToken verifies an HS256 token and returns its claims. Nothing in the
// request path checks tokens yet; this keeps GenerateToken honest in tests.
func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	return token.Claims.(jwt.MapClaims), nil
}
