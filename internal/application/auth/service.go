package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/CcubeNetvix/medTracker/internal/application/otp"
	"github.com/CcubeNetvix/medTracker/internal/domain"
	"github.com/CcubeNetvix/medTracker/internal/pkg/id"
	"github.com/CcubeNetvix/medTracker/internal/pkg/password"
	"github.com/CcubeNetvix/medTracker/internal/pkg/validate"
)

// Service orchestrates registration and login. Both operations are
// single-shot: store failures propagate unchanged, nothing is retried.
type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type tokenSigner interface {
	Sign(u *domain.User) (string, error)
}

type service struct {
	repo   userStore
	signer tokenSigner
	otpSvc otp.Service
}

type ServiceDeps struct {
	UserRepo userStore
	Signer   tokenSigner
	OTP      otp.Service
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:   deps.UserRepo,
		signer: deps.Signer,
		otpSvc: deps.OTP,
	}
}

// Register creates an account and issues an identity token. The email
// uniqueness check runs before any write; nothing is persisted when
// validation or hashing fails.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", fmt.Errorf("email %s already registered: %w", req.Email, domain.ErrDuplicateUser)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:         id.New(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHash:   hash,
		Age:            req.Age,
		Gender:         req.Gender,
		Height:         req.Height,
		Weight:         req.Weight,
		MembershipType: domain.DefaultMembership,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.signer.Sign(u)
	if err != nil {
		return nil, "", err
	}

	// Kick off phone verification. A failed send is logged and reported
	// through the delivery result; it never aborts a completed registration.
	if s.otpSvc != nil {
		if code, err := s.otpSvc.Generate(); err != nil {
			slog.Warn("otp generation failed", "user_id", u.UserID, "err", err)
		} else if res := s.otpSvc.Dispatch(ctx, u.Phone, code); !res.Success {
			slog.Warn("otp delivery failed", "user_id", u.UserID, "phone", u.Phone, "reason", res.Message)
		}
	}

	slog.Info("user registered", "user_id", u.UserID, "email", u.Email)
	return u, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password produce the same error kind so callers cannot probe for
// account existence.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.signer.Sign(u)
	if err != nil {
		return nil, "", err
	}

	slog.Info("user logged in", "user_id", u.UserID, "email", u.Email)
	return u, token, nil
}
