package controllers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/models"
	"github.com/printmate/storefront-backend/services"
)

type IAuthService interface {
	RequestLoginOTP(ctx context.Context, email string) error
	VerifyLoginOTP(ctx context.Context, email, otp string) (*models.User, *services.TokenPair, error)
	ResendOTP(ctx context.Context, email string) (time.Duration, error)
	Signup(ctx context.Context, email, mobileNumber string) (*models.User, error)
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

type LoginOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type SignupRequest struct {
	Email        string `json:"email" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

type AuthController struct {
	service IAuthService
}

func NewAuthController(service IAuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /auth/login: issues an OTP for a registered email.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	if err := ac.service.RequestLoginOTP(c.Request.Context(), req.Email); err != nil {
		if apperrors.From(err).Code == http.StatusInternalServerError {
			err = apperrors.ErrLoginFailed
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// LoginOTP handles POST /auth/loginotp: verifies the code and logs the user
// in, setting the token cookies.
func (ac *AuthController) LoginOTP(c *gin.Context) {
	var req LoginOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	user, pair, err := ac.service.VerifyLoginOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		if apperrors.From(err).Code == http.StatusInternalServerError {
			err = apperrors.ErrLoginFailed
		}
		respondError(c, err)
		return
	}

	c.SetCookie("token", pair.AccessToken, int((15 * 60)), "/", "", false, true)
	c.SetCookie("refresh_token", pair.RefreshToken, int((7 * 24 * 3600)), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// ResendOTP handles POST /auth/resendotp. Rejected while the cooldown runs.
func (ac *AuthController) ResendOTP(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	retryAfter, err := ac.service.ResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		if retryAfter > 0 {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP resent"})
}

// Signup handles POST /auth/signup: registers an account and issues the
// verification OTP.
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	user, err := ac.service.Signup(c.Request.Context(), req.Email, req.MobileNumber)
	if err != nil {
		if apperrors.From(err).Code == http.StatusInternalServerError {
			err = apperrors.ErrSignupFailed
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created, verify the OTP sent to your email",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}
