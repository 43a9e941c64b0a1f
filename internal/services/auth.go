package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fairwaylabs/golfcoach-backend/internal/apperr"
	userrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/user"
	types "github.com/fairwaylabs/golfcoach-backend/internal/domain"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/sendgrid"
)

const minPasswordLength = 8

type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*types.User, error)
	Login(ctx context.Context, email, password string) (string, uuid.UUID, error)
	// RequestPasswordReset always succeeds for well-formed input, whether or
	// not the email belongs to an account.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ParseToken(tokenString string) (uuid.UUID, error)
	ListUsers(ctx context.Context) ([]types.PublicUser, error)
	AccessTTL() time.Duration
}

type authService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        userrepo.UserRepo
	mail            sendgrid.Client
	jwtSecretKey    string
	accessTTL       time.Duration
	resetTTL        time.Duration
	frontendBaseURL string
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepo.UserRepo,
	mail sendgrid.Client,
	jwtSecretKey string,
	accessTTL time.Duration,
	resetTTL time.Duration,
	frontendBaseURL string,
) AuthService {
	return &authService{
		db:              db,
		log:             log.With("service", "AuthService"),
		userRepo:        userRepo,
		mail:            mail,
		jwtSecretKey:    jwtSecretKey,
		accessTTL:       accessTTL,
		resetTTL:        resetTTL,
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (as *authService) Register(ctx context.Context, email, password, firstName, lastName string) (*types.User, error) {
	email = normalizeEmail(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperr.ErrValidation, minPasswordLength)
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apperr.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &types.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := as.userRepo.Create(ctx, nil, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (string, uuid.UUID, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", uuid.Nil, fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	u, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a hash mismatch; the two cases must be
			// indistinguishable to the caller.
			return "", uuid.Nil, apperr.ErrInvalidCredentials
		}
		return "", uuid.Nil, fmt.Errorf("fetch user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", uuid.Nil, apperr.ErrInvalidCredentials
	}

	token, err := as.generateAccessToken(u)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("generate access token: %w", err)
	}
	return token, u.ID, nil
}

func (as *authService) generateAccessToken(u *types.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   u.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) ParseToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	return userID, nil
}

func (as *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}

	u, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Uniform acknowledgement prevents account enumeration.
			return nil
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	token := uuid.New().String()
	expires := time.Now().Add(as.resetTTL)
	if err := as.userRepo.SetResetToken(ctx, nil, u.ID, token, expires); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset?token=%s", as.frontendBaseURL, token)
	_, sendErr := as.mail.Send(ctx, sendgrid.SendEmailRequest{
		To:      []sendgrid.EmailAddress{{Email: u.Email}},
		Subject: "Reset your AI Golf Coach password",
		Text:    fmt.Sprintf("Click here to reset: %s", resetLink),
		HTML:    fmt.Sprintf(`<p>Click <a href="%s">here</a> to reset your password.</p>`, resetLink),
	})
	if sendErr != nil {
		// Swallowed on purpose: surfacing the failure would both create an
		// enumeration side-channel and block the flow on a non-critical
		// dependency.
		as.log.Warn("Reset email send failed",
			"event", "reset_email_failed",
			"user_id", u.ID.String(),
			"error", sendErr.Error(),
		)
	}
	return nil
}

func (as *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperr.ErrInvalidOrExpiredToken
	}
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperr.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	consumed, err := as.userRepo.ConsumeResetToken(ctx, nil, token, string(hash), time.Now())
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	if !consumed {
		return apperr.ErrInvalidOrExpiredToken
	}
	return nil
}

func (as *authService) ListUsers(ctx context.Context) ([]types.PublicUser, error) {
	users, err := as.userRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]types.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}
