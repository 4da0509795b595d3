package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCashier UserRole = "cashier"
)

// User is a back-office or terminal operator account.
type User struct {
	BaseModel
	Email    string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string   `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName string   `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	Role     UserRole `gorm:"type:varchar(20);not null;default:'cashier'" json:"role" validate:"required,oneof=admin cashier"`
	IsActive bool     `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     UserRole  `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
