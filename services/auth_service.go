package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type IOTPRepository interface {
	SaveCodeHash(ctx context.Context, email, hash string, ttl time.Duration) error
	GetCodeHash(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error
	SetCooldown(ctx context.Context, email string, d time.Duration) error
	CooldownRemaining(ctx context.Context, email string) (time.Duration, error)
}

type ITokenService interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
	ValidateToken(tokenStr, expectedType string) (jwt.MapClaims, error)
}

// AuthOptions carries the OTP timing knobs from config.
type AuthOptions struct {
	OTPTTL             time.Duration
	OTPInitialCooldown time.Duration
	OTPResendCooldown  time.Duration
}

type AuthService struct {
	userRepo     IUserRepository
	otpRepo      IOTPRepository
	tokenService ITokenService
	sender       OTPSender
	opts         AuthOptions
}

func NewAuthService(ur IUserRepository, or IOTPRepository, ts ITokenService, sender OTPSender, opts AuthOptions) *AuthService {
	return &AuthService{
		userRepo:     ur,
		otpRepo:      or,
		tokenService: ts,
		sender:       sender,
		opts:         opts,
	}
}

// RequestLoginOTP issues a fresh OTP for a registered email and starts the
// initial resend cooldown.
func (s *AuthService) RequestLoginOTP(ctx context.Context, email string) error {
	if !ValidateEmail(email) {
		return apperrors.New(http.StatusBadRequest, "Invalid email address", nil)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(http.StatusNotFound, "No account found for this email.", nil)
		}
		return err
	}

	return s.issueOTP(ctx, email, s.opts.OTPInitialCooldown)
}

// VerifyLoginOTP checks the submitted code against the stored hash. On
// success the OTP session is destroyed and a token pair is issued.
func (s *AuthService) VerifyLoginOTP(ctx context.Context, email, otp string) (*models.User, *TokenPair, error) {
	if !IsOtpComplete(otp) {
		return nil, nil, apperrors.ErrInvalidOTP
	}

	hash, err := s.otpRepo.GetCodeHash(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if hash == "" {
		return nil, nil, apperrors.ErrInvalidOTP
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(otp)) != nil {
		return nil, nil, apperrors.ErrInvalidOTP
	}

	if err := s.otpRepo.DeleteCode(ctx, email); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if !user.EmailVerified {
		user.EmailVerified = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	pair, err := s.tokenService.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// ResendOTP rotates the code. Gated by the cooldown key; a premature call is
// rejected without touching the stored code, and the remaining cooldown is
// returned so the handler can set Retry-After.
func (s *AuthService) ResendOTP(ctx context.Context, email string) (time.Duration, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.New(http.StatusNotFound, "No account found for this email.", nil)
		}
		return 0, err
	}

	remaining, err := s.otpRepo.CooldownRemaining(ctx, email)
	if err != nil {
		return 0, err
	}
	if remaining > 0 {
		return remaining, apperrors.ErrResendOTP
	}

	return 0, s.issueOTP(ctx, email, s.opts.OTPResendCooldown)
}

// Signup registers a new user and issues a verification OTP.
func (s *AuthService) Signup(ctx context.Context, email, mobileNumber string) (*models.User, error) {
	if !ValidateEmail(email) {
		return nil, apperrors.New(http.StatusBadRequest, "Invalid email address", nil)
	}
	if _, ok := localNumber(mobileNumber); !ok {
		return nil, apperrors.New(http.StatusBadRequest, "Invalid mobile number", nil)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.New(http.StatusConflict, "Email already exists", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		MobileNumber: mobileNumber,
		Role:         "user",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, email, s.opts.OTPInitialCooldown); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueOTP(ctx context.Context, email string, cooldown time.Duration) error {
	code := GenerateRandomCode(6)

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.otpRepo.SaveCodeHash(ctx, email, string(hash), s.opts.OTPTTL); err != nil {
		return err
	}
	if err := s.sender.SendOTP(email, code); err != nil {
		return err
	}
	return s.otpRepo.SetCooldown(ctx, email, cooldown)
}

var nonDigitRe = regexp.MustCompile(`\D`)

// localNumber extracts the 10-digit local number from a mobile number that
// may carry a country code prefix (e.g. "+91 98765 43210").
func localNumber(mobile string) (string, bool) {
	digits := nonDigitRe.ReplaceAllString(mobile, "")
	if len(digits) < 10 || len(digits) > 13 {
		return "", false
	}
	local := digits[len(digits)-10:]
	return local, ValidatePhone(local)
}
