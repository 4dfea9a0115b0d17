package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"digistore/models"
)

// RedisClient is an optional shared Redis client used for token revocation.
// It stays nil when REDIS_ADDR is not configured; logout then degrades to
// client-side token disposal.
var RedisClient *redis.Client

func init() {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return
	}
	opts := &redis.Options{Addr: addr}
	if p := os.Getenv("REDIS_PASS"); p != "" {
		opts.Password = p
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		var dbn int
		_, _ = fmt.Sscanf(dbStr, "%d", &dbn)
		opts.DB = dbn
	}
	rc := redis.NewClient(opts)
	if err := rc.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("warning: redis ping failed: %v\n", err)
		return
	}
	RedisClient = rc
}

type contextKey string

const UserIDKey = contextKey("userID")
const UserRoleKey = contextKey("userRole")
const RequestIDKey = contextKey("requestID")

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return []byte(secret), nil
}

// GenerateJWT issues an HS256 access token for the given user id and role.
// Admin tokens are shorter-lived.
func GenerateJWT(id uint, username, role string) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	expTime := 24 * time.Hour
	if role == "admin" {
		expTime = 6 * time.Hour
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
		"role":     role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(expTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken parses and validates a token, including signature,
// registered claims and the Redis revocation list when configured.
func ValidateAccessToken(tokenString string) (*jwt.Token, jwt.MapClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, nil, err
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, nil, errors.New("token expired")
		}
		return nil, nil, errors.New("invalid token")
	}
	if !token.Valid {
		return nil, nil, errors.New("invalid token")
	}

	if RedisClient != nil {
		if jti, ok := claims["jti"].(string); ok && jti != "" {
			n, err := RedisClient.Exists(context.Background(), revocationKey(jti)).Result()
			if err == nil && n > 0 {
				return nil, nil, errors.New("token revoked")
			}
		}
	}

	return token, claims, nil
}

// RevokeToken marks the token's jti revoked until its natural expiry.
func RevokeToken(claims jwt.MapClaims) error {
	if RedisClient == nil {
		return nil
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}
	ttl := time.Hour
	if exp, ok := claims["exp"].(float64); ok {
		if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
			ttl = until
		}
	}
	return RedisClient.Set(context.Background(), revocationKey(jti), "1", ttl).Err()
}

func revocationKey(jti string) string {
	return "revoked:jwt:" + jti
}

func refreshTokenTTL() time.Duration {
	days := 7
	if v := os.Getenv("REFRESH_TOKEN_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

// GenerateRefreshToken mints and stores an opaque refresh token for the
// user. Callers rotating a token pass the surrounding transaction so revoke
// and mint commit together.
func GenerateRefreshToken(db *gorm.DB, userID uint) (string, error) {
	rt, err := models.NewRefreshToken(userID, refreshTokenTTL())
	if err != nil {
		return "", err
	}
	if err := db.Create(rt).Error; err != nil {
		return "", err
	}
	return rt.ID, nil
}

// ValidateRefreshToken loads a refresh token row that is neither revoked nor
// expired.
func ValidateRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := db.Where("id = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	if rt.Revoked {
		return nil, errors.New("refresh token revoked")
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, errors.New("refresh token expired")
	}
	return &rt, nil
}

// RevokeRefreshTokens marks every live refresh token of the user revoked.
func RevokeRefreshTokens(db *gorm.DB, userID uint) error {
	return db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

// GetUserID extracts the authenticated user id placed in the request context
// by the auth middleware.
func GetUserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(UserIDKey).(uint)
	return id, ok
}

// GetUserRole extracts the authenticated role from the request context.
func GetUserRole(r *http.Request) string {
	role, _ := r.Context().Value(UserRoleKey).(string)
	return role
}
