package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/foundryai/studio-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and verifies the admin bearer tokens. JWT only: the
// legacy static API key scheme was retired.
type AuthService struct {
	DB     *gorm.DB
	Secret []byte
	TTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{
		DB:     db,
		Secret: []byte(secret),
		TTL:    24 * time.Hour,
	}
}

// Login exchanges credentials for a signed token. Unknown usernames and bad
// passwords fail identically so the response leaks nothing.
func (s *AuthService) Login(username, password string) (string, *models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.TTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", nil, err
	}

	return token, &admin, nil
}

// ParseToken verifies signature and expiry and returns the admin ID.
func (s *AuthService) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidCredentials
	}
	id, ok := claims["admin_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidCredentials
	}
	return uint(id), nil
}

// Register creates an admin account. Reached only from the bootstrap CLI;
// there is no open registration route.
func (s *AuthService) Register(username, password, email string) (*models.Admin, error) {
	var existing models.Admin
	err := s.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.DB.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}
