package middleware

import (
	"fmt"
	"strings"
	"time"

	"architect/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Identity is the authenticated caller extracted from a verified token
type Identity struct {
	UserID   uint
	Subject  string // user email
	IssuedAt int64
	Expiry   int64
}

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, email string) (string, error) {
	ttl := time.Duration(config.AppConfig.TokenTTL) * time.Minute
	claims := jwt.MapClaims{
		"userId": userID,
		"sub":    email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	// Expired or tampered tokens fail here
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil || claims["sub"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	ident := Identity{
		UserID:  uint(userID),
		Subject: subject,
	}
	if iat, ok := claims["iat"].(float64); ok {
		ident.IssuedAt = int64(iat)
	}
	if exp, ok := claims["exp"].(float64); ok {
		ident.Expiry = int64(exp)
	}

	c.Locals("identity", ident)

	return c.Next()
}

// CurrentIdentity returns the identity stored by JWTMiddleware
func CurrentIdentity(c *fiber.Ctx) (Identity, bool) {
	ident, ok := c.Locals("identity").(Identity)
	return ident, ok
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
