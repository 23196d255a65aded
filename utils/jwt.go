package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"tripnest/config"
)

// Actor roles recognized by the booking core.
const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

// Actor identifies the authenticated caller of a booking operation. Tokens
// are issued by the identity service; this core only verifies them.
type Actor struct {
	Role       string
	VendorID   string
	CustomerID string
	Email      string
}

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateActorToken creates a signed JWT carrying actor claims. Used by
// tests and local tooling; production tokens come from the identity service.
func GenerateActorToken(actor Actor, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role":  actor.Role,
		"email": actor.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	if actor.VendorID != "" {
		claims["vendorId"] = actor.VendorID
	}
	if actor.CustomerID != "" {
		claims["sub"] = actor.CustomerID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseActorToken validates a token string and extracts the actor claims.
func ParseActorToken(tokenString string) (*Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	actor := &Actor{}
	if v, ok := claims["role"].(string); ok {
		actor.Role = v
	}
	if v, ok := claims["vendorId"].(string); ok {
		actor.VendorID = v
	}
	if v, ok := claims["sub"].(string); ok {
		actor.CustomerID = v
	}
	if v, ok := claims["email"].(string); ok {
		actor.Email = v
	}
	if actor.Role == "" {
		return nil, errors.New("token missing role claim")
	}
	return actor, nil
}
