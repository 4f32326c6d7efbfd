package dto

import (
	"time"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// SignupRequest defines the data needed to register an account.
type SignupRequest struct {
	Username    string        `json:"username" binding:"required"`
	Password    string        `json:"password" binding:"required"`
	Name        string        `json:"name" binding:"required"`
	Email       string        `json:"email" binding:"required,email"`
	PhoneNumber string        `json:"phoneNumber" binding:"required"`
	Gender      domain.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth string        `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Zip         string        `json:"zip"`
	Country     string        `json:"country"`
	Roles       []string      `json:"roles" binding:"required,min=1,dive,role"`
	// Specialization only applies when roles contain DOCTOR.
	Specialization string `json:"specialization"`
}

// LoginRequest accepts either the username or the email as identifier.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Message    string    `json:"message"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Roles      []string  `json:"roles"`
	UserType   string    `json:"userType"`
	RedirectTo string    `json:"redirectTo"`
}

const (
	doctorLanding  = "/doctor-dashboard"
	patientLanding = "/providers"
)

// ToLoginResponse builds the login payload; doctors land on their dashboard.
func ToLoginResponse(user domain.User, token string, expiresAt time.Time) LoginResponse {
	redirect := patientLanding
	if user.IsDoctor() {
		redirect = doctorLanding
	}
	return LoginResponse{
		Message:    "Login successful",
		Token:      token,
		ExpiresAt:  expiresAt,
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.Name,
		Roles:      user.Roles.Strings(),
		UserType:   string(user.PrimaryRole()),
		RedirectTo: redirect,
	}
}

// UserResponse is the public profile. The password hash is never part of it.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"dob,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Zip         string    `json:"zip,omitempty"`
	Country     string    `json:"country,omitempty"`
	Roles       []string  `json:"roles"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		Gender:      string(u.Gender),
		Address:     u.Address,
		City:        u.City,
		State:       u.State,
		Zip:         u.Zip,
		Country:     u.Country,
		Roles:       u.Roles.Strings(),
		Enabled:     u.Enabled,
		CreatedAt:   u.CreatedAt,
	}
	if !u.DateOfBirth.IsZero() {
		resp.DateOfBirth = u.DateOfBirth.Format(time.DateOnly)
	}
	return resp
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}
