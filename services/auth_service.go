package services

import (
	"context"
	"os"
	"time"

	"hotelpms/config"
	"hotelpms/errors"
	"hotelpms/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

const tokenLifetime = 24 * time.Hour

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken issues a signed JWT carrying the staff identity and role.
func GenerateToken(staff models.Staff) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: staff.ID,
			Role:   staff.Role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// CheckPassword compares the stored bcrypt hash against a candidate password.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid email or password", err)
	}
	return nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyGoogleIDToken validates a Google sign-in token and returns the
// asserted email, name and picture.
func VerifyGoogleIDToken(ctx context.Context, rawToken string) (email, name, picture string, err error) {
	payload, err := idtoken.Validate(ctx, rawToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid Google token", err)
	}

	email, _ = payload.Claims["email"].(string)
	name, _ = payload.Claims["name"].(string)
	picture, _ = payload.Claims["picture"].(string)
	if email == "" {
		return "", "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Google token has no email", nil)
	}
	return email, name, picture, nil
}

const revokedTokenPrefix = "auth:revoked:"

// RevokeToken denylists a token until its natural expiry.
func RevokeToken(tokenString string) error {
	if config.RedisClient == nil {
		return nil
	}
	return config.RedisClient.Set(config.Ctx, revokedTokenPrefix+tokenString, "1", tokenLifetime).Err()
}

// IsTokenRevoked reports whether a token was logged out.
func IsTokenRevoked(tokenString string) bool {
	if config.RedisClient == nil {
		return false
	}
	n, err := config.RedisClient.Exists(config.Ctx, revokedTokenPrefix+tokenString).Result()
	return err == nil && n > 0
}
