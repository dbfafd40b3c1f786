package marketplace

import (
	"fmt"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is the subset of access-token claims the client needs to
// know who it is acting as.
type TokenClaims struct {
	UserID int64
	Type   string
	Exp    int64
}

// ParseToken extracts claims from an access token without verifying the
// signature; the server is the authority, the client only needs its own
// identity and the expiry for display purposes.
func ParseToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.Parser{}
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user id")
	}

	tokenType, _ := claims["typ"].(string)
	exp, _ := claims["exp"].(float64)

	return &TokenClaims{
		UserID: int64(userID),
		Type:   tokenType,
		Exp:    int64(exp),
	}, nil
}

// ActingUserID returns the user id baked into the client's access token.
func (c *Client) ActingUserID() (int64, error) {
	if c.Token == "" {
		return 0, newError(KindUnauthorized, "no access token configured")
	}
	claims, err := ParseToken(c.Token)
	if err != nil {
		return 0, newError(KindUnauthorized, err.Error())
	}
	return claims.UserID, nil
}
