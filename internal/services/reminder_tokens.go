package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const reminderOptOutTokenPurpose = "reminder_opt_out"

var (
	ErrOptOutTokenMissing        = errors.New("missing opt-out token")
	ErrOptOutTokenInvalid        = errors.New("invalid opt-out token")
	ErrOptOutTokenInvalidPurpose = errors.New("invalid opt-out token purpose")
	ErrOptOutTokenExpired        = errors.New("expired opt-out token")
	ErrOptOutTokenInvalidEmail   = errors.New("invalid opt-out token email")
)

type ReminderOptOutClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func BuildReminderOptOutToken(secretKey []byte, email string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = 90 * 24 * time.Hour
	}
	if now.IsZero() {
		now = time.Now()
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrOptOutTokenInvalidEmail
	}

	claims := ReminderOptOutClaims{
		Email:   email,
		Purpose: reminderOptOutTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParseReminderOptOutToken(secretKey []byte, rawToken string, now time.Time) (*ReminderOptOutClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrOptOutTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &ReminderOptOutClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrOptOutTokenExpired
	}
	if err != nil || !token.Valid {
		return nil, ErrOptOutTokenInvalid
	}
	if claims.Purpose != reminderOptOutTokenPurpose {
		return nil, ErrOptOutTokenInvalidPurpose
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrOptOutTokenExpired
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, ErrOptOutTokenInvalidEmail
	}
	return claims, nil
}
