package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/apperrors"
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/docorbit_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/SscSPs/docorbit_backend/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvc
}

// NewAuthService creates the registration, login and identity service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvc, opts ...ServiceOption) portssvc.AuthSvcFacade {
	s := &authService{userRepo: userRepo, tokens: tokens}
	applyOptions(&s.BaseService, opts)
	return s
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	roles, err := parseRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		dob, err = time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: dob must be YYYY-MM-DD", apperrors.ErrValidation)
		}
	}

	conflicts, err := s.userRepo.FindIdentityConflicts(ctx, req.Username, req.Email, req.PhoneNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check identity conflicts")
		return nil, err
	}
	if conflicts.Any() {
		s.LogInfo(ctx, "Registration rejected on identity conflict",
			slog.Bool("username_taken", conflicts.Username),
			slog.Bool("email_taken", conflicts.Email),
			slog.Bool("phone_taken", conflicts.PhoneNumber))
		return nil, duplicateIdentityError(conflicts)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		Name:         req.Name,
		Gender:       req.Gender,
		DateOfBirth:  dob,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Country:      req.Country,
		Roles:        roles,
		Enabled:      true,
		Timestamps:   domain.Timestamps{CreatedAt: now, LastUpdatedAt: now},
	}

	provision := provisionProfiles(user, req.Specialization, now)

	if err := s.userRepo.CreateUser(ctx, user, provision); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent registration after the pre-check.
			s.LogWarn(ctx, "Registration hit unique constraint", slog.String("error", err.Error()))
			return nil, apperrors.NewAppError(http.StatusBadRequest, "Registration failed: identity already in use.", err)
		}
		s.LogError(ctx, err, "Failed to persist registration")
		return nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.Any("roles", user.Roles.Strings()),
		slog.Bool("doctor_profile", provision != nil))
	return &user, nil
}

// parseRoles requires at least one known role and drops duplicates.
func parseRoles(raw []string) (domain.Roles, error) {
	roles := make(domain.Roles, 0, len(raw))
	for _, r := range raw {
		role, err := domain.ParseRole(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		roles = append(roles, role)
	}
	roles = roles.Normalize()
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: at least one role is required", apperrors.ErrValidation)
	}
	return roles, nil
}

// duplicateIdentityError names every conflicting field in one message.
func duplicateIdentityError(c domain.IdentityConflicts) error {
	var b strings.Builder
	b.WriteString("Registration failed:")
	if c.Username {
		b.WriteString(" username already taken.")
	}
	if c.Email {
		b.WriteString(" email already in use.")
	}
	if c.PhoneNumber {
		b.WriteString(" phone number already in use.")
	}
	return apperrors.NewAppError(http.StatusBadRequest, b.String(), apperrors.ErrDuplicate)
}

// provisionProfiles is the post-registration hook keyed on the role set. Only DOCTOR
// needs extra rows: a clinic named after the user and a doctor profile linked to it.
func provisionProfiles(user domain.User, specialization string, now time.Time) *domain.DoctorProvision {
	if !user.Roles.Has(domain.RoleDoctor) {
		return nil
	}

	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		specialization = domain.DefaultSpecialization
	}

	ts := domain.Timestamps{CreatedAt: now, LastUpdatedAt: now}
	clinic := domain.Clinic{
		ClinicID:   uuid.NewString(),
		Name:       "Clinic of " + user.Name,
		Address:    user.Address,
		City:       user.City,
		State:      user.State,
		Country:    user.Country,
		Phone:      user.PhoneNumber,
		Timestamps: ts,
	}
	userID := user.UserID
	return &domain.DoctorProvision{
		SpecializationName: specialization,
		Clinic:             clinic,
		Doctor: domain.Doctor{
			DoctorID:       uuid.NewString(),
			UserID:         &userID,
			Name:           user.Name,
			Specialization: specialization,
			Email:          user.Email,
			Phone:          user.PhoneNumber,
			Clinic:         &clinic,
			Timestamps:     ts,
		},
	}
}

// Login resolves identifier as a username first, then as an email. Every failure
// returns the same ErrUnauthorized; only the log line tells them apart.
func (s *authService) Login(ctx context.Context, identifier, password string) (*portssvc.LoginResult, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, identifier)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.userRepo.FindUserByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login failed: unknown identifier")
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !user.Enabled {
		s.LogInfo(ctx, "Login failed: account disabled", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(user.Username)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue session token", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &portssvc.LoginResult{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

func (s *authService) ResolveIdentity(ctx context.Context, username string) (*domain.Identity, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.Enabled {
		return nil, fmt.Errorf("%w: account disabled", apperrors.ErrUnauthorized)
	}
	identity := domain.NewIdentity(*user)
	return &identity, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load profile", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}
