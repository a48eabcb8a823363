package services

import "golang.org/x/crypto/bcrypt"

// AuthService handles credential hashing for both storefront users and
// back-office admins.
type AuthService struct{}

var authService = &AuthService{}

// GetAuthService returns the shared auth service.
func GetAuthService() *AuthService {
	return authService
}

// HashPassword hashes a password using bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a password against its bcrypt hash.
func (s *AuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks minimum requirements (8 characters).
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}
