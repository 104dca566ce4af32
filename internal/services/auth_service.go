package services

import (
	"fmt"
	"time"

	"todoapp/internal/apperrors"
	"todoapp/internal/models"
	"todoapp/internal/repositories"
	"todoapp/internal/response"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the payload for user registration. The password cap
// matches bcrypt's 72-byte input limit, so anything that passes validation
// is guaranteed to hash.
type RegisterInput struct {
	FullName string `json:"fullName" validate:"omitempty,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginInput is the payload for user login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	expiresIn  time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService. A zero cost falls back to the
// bcrypt default.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, expiresIn time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		expiresIn:  expiresIn,
		bcryptCost: bcryptCost,
	}
}

// HashPassword hashes a plaintext password before it is persisted. Hashing
// is an explicit step owned by this service; the repositories never see
// plaintext.
func (s *AuthService) HashPassword(plainText string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainText), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Register creates a new user and returns a bearer token as the response
// data. A duplicate email yields a Conflict error.
func (s *AuthService) Register(input RegisterInput) (*response.Envelope, error) {
	existing, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("Email already exists")
	}

	hashed, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return response.NewSuccess("User registered successfully", token), nil
}

// Login authenticates a user by email and password and returns a bearer
// token as the response data. An unknown email, a user without a stored
// password and a failed hash comparison are deliberately indistinguishable.
func (s *AuthService) Login(input LoginInput) (*response.Envelope, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == "" {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return response.NewSuccess("User logged in successfully", token), nil
}

// generateToken signs the claims {id, email} plus expiry with the server
// secret.
func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   now.Add(s.expiresIn).Unix(),
		"iat":   now.Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
// Missing, malformed, expired and signature-invalid tokens all map to the
// same Unauthorized error.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, apperrors.NewUnauthorized("Unauthorized Access Detected")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.NewUnauthorized("Unauthorized Access Detected")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.NewUnauthorized("Unauthorized Access Detected")
	}
	return claims, nil
}
