package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a storefront customer. Password logins store a bcrypt hash;
// Google logins store the Google subject id and no hash.
type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  *string   `json:"-" gorm:"type:varchar(255)"`
	GoogleID      *string   `json:"-" gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id,where:google_id IS NOT NULL"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);not null;default:'password'"`
	Phone         *string   `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Address       *Address  `json:"address,omitempty" gorm:"type:jsonb"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;not null;default:false"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public-facing user data.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Provider:  u.Provider,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateProfileRequest carries partial profile edits. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name    *string  `json:"name,omitempty"`
	Phone   *string  `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// ApplyTo merges the set fields onto the user.
func (r *UpdateProfileRequest) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.Address != nil {
		u.Address = r.Address
	}
}

// SignUpRequest registers a new customer.
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignInRequest authenticates an existing customer. Unknown credentials
// are rejected; there is no silent demo session.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful authentication.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// GoogleUserInfo is the profile payload from the Google userinfo endpoint.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
