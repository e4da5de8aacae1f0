package session

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Session is the server-side record of a logged-in browser. It lives in the
// session store under its ID; the browser only ever holds the signed token.
type Session struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Claims is the payload of the session cookie token.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// NewToken signs a cookie token for the given session.
func NewToken(s *Session, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username: s.Username,
		StandardClaims: jwt.StandardClaims{
			Id:        s.ID,
			Subject:   s.UserID,
			Issuer:    "minisocial",
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a cookie token and returns its claims.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired session token")
	}
	if claims.Id == "" || claims.Subject == "" {
		return nil, errors.New("session token missing identity claims")
	}
	return claims, nil
}
