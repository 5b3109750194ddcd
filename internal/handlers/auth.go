package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ashraf-Khalifa/digital-new/internal/config"
	"github.com/Ashraf-Khalifa/digital-new/internal/email"
	"github.com/Ashraf-Khalifa/digital-new/internal/middleware"
	"github.com/Ashraf-Khalifa/digital-new/internal/models"
	"github.com/Ashraf-Khalifa/digital-new/internal/store"
	"github.com/Ashraf-Khalifa/digital-new/internal/utils"
)

// errEmailNotVerified aborts a signup whose email never went through
// send-OTP; there is no EmailRecord to attach the session token to.
var errEmailNotVerified = errors.New("email not verified")

const otpIssueAttempts = 5

type AuthHandler struct {
	Stores *store.Stores
	Cfg    config.Config
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyOTPRequest struct {
	OTP string `json:"otp" binding:"required,len=6"`
}

type signupRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhotoURL    string `json:"photoUrl"`
	Number      string `json:"number"`
	Gender      string `json:"gender"`
	Birthdate   string `json:"birthdate"`
	Nationality string `json:"nationality"`
	City        string `json:"city"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func NewAuthHandler(stores *store.Stores, cfg config.Config) *AuthHandler {
	return &AuthHandler{Stores: stores, Cfg: cfg}
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid email"})
		return
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	// The verify step looks codes up globally, so a candidate colliding
	// with another outstanding code is regenerated.
	var code string
	for attempt := 0; attempt < otpIssueAttempts; attempt++ {
		candidate, err := utils.GenerateOTP()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "otp generation failed"})
			return
		}
		_, err = h.Stores.Emails.FindByOTP(candidate)
		if errors.Is(err, store.ErrNotFound) {
			code = candidate
			break
		}
		if err != nil {
			log.Printf("otp lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error inserting email and OTP"})
			return
		}
	}
	if code == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "otp generation failed"})
		return
	}

	expiresAt := time.Now().Add(time.Duration(h.Cfg.OtpMinutes) * time.Minute)
	if err := h.Stores.Emails.UpsertOTP(normalizedEmail, code, expiresAt); err != nil {
		log.Printf("otp storage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error inserting email and OTP"})
		return
	}

	smtpCfg := email.Config{
		Host:     h.Cfg.SmtpHost,
		Port:     h.Cfg.SmtpPort,
		Username: h.Cfg.SmtpUser,
		Password: h.Cfg.SmtpPass,
		From:     h.Cfg.SmtpFrom,
	}
	if err := email.SendOTP(smtpCfg, normalizedEmail, code); err != nil {
		if !errors.Is(err, email.ErrNotConfigured) {
			log.Printf("smtp send error: %v", err)
		}
		if h.Cfg.IsProduction() {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "email failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP Sent Successfully", "devOtp": code})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP Sent Successfully"})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}

	// Lookup and single-use invalidation commit together, so a code is
	// proof of possession exactly once.
	var record *models.EmailRecord
	err := h.Stores.WithTx(func(tx *store.Stores) error {
		found, err := tx.Emails.FindByOTP(req.OTP)
		if err != nil {
			return err
		}
		if err := tx.Emails.MarkOTPUsed(found.ID); err != nil {
			return err
		}
		record = found
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email verification failed"})
		return
	}
	if err != nil {
		log.Printf("otp verify error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": gin.H{
		"email":    record.Email,
		"verified": record.Verified,
	}})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields must be filled"})
		return
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.Stores.Users.FindByEmail(normalizedEmail); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "email already registered"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("user lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "password error"})
		return
	}

	token, err := utils.GenerateToken(h.Cfg.TokenLength)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token error"})
		return
	}

	user := models.User{
		Email:        normalizedEmail,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		PhotoURL:     req.PhotoURL,
		Number:       req.Number,
		Gender:       req.Gender,
		Birthdate:    req.Birthdate,
		Nationality:  req.Nationality,
		City:         req.City,
	}

	err = h.Stores.WithTx(func(tx *store.Stores) error {
		rows, err := tx.Emails.UpdateToken(normalizedEmail, token)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errEmailNotVerified
		}
		return tx.Users.Create(&user)
	})
	if errors.Is(err, errEmailNotVerified) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email not verified"})
		return
	}
	if err != nil {
		log.Printf("signup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error inserting user info"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.Email, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Signup successful",
		"token":       token,
		"accessToken": accessToken,
		"user":        user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.Stores.Users.FindByEmail(normalizedEmail)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if err != nil {
		log.Printf("user lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(h.Cfg.TokenLength)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token error"})
		return
	}

	err = h.Stores.WithTx(func(tx *store.Stores) error {
		rows, err := tx.Emails.UpdateToken(normalizedEmail, token)
		if err != nil {
			return err
		}
		if rows == 0 {
			// A user row without its EmailRecord means the store lost
			// state signup created; surface it instead of logging on.
			return store.ErrNotFound
		}
		return nil
	})
	if err != nil {
		log.Printf("session issue error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.Email, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"token":       token,
		"accessToken": accessToken,
		"user":        user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}

	rows, err := h.Stores.Emails.ClearToken(req.Token)
	if err != nil {
		log.Printf("logout error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logout failed"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wrong token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Token exchanges a bearer session token for a fresh one, rotating the old
// token out. An unknown token is a soft outcome: the caller is a new user
// and should go through signup or login.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}

	record, err := h.Stores.Emails.FindByToken(req.Token)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"message": "New user, no token found"})
		return
	}
	if err != nil {
		log.Printf("token lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving user email"})
		return
	}

	user, err := h.Stores.Users.FindByEmail(record.Email)
	if errors.Is(err, store.ErrNotFound) {
		// Token issued but signup never completed its user insert.
		c.JSON(http.StatusOK, gin.H{"message": "New user, no token found"})
		return
	}
	if err != nil {
		log.Printf("user lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	newToken, err := utils.GenerateToken(h.Cfg.TokenLength)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token error"})
		return
	}

	err = h.Stores.WithTx(func(tx *store.Stores) error {
		rows, err := tx.Emails.UpdateToken(record.Email, newToken)
		if err != nil {
			return err
		}
		if rows == 0 {
			return store.ErrNotFound
		}
		return nil
	})
	if err != nil {
		log.Printf("token rotation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.Email, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"newToken":    newToken,
		"accessToken": accessToken,
		"user":        user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	emailValue, ok := c.Get(middleware.ContextEmail)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	user, err := h.Stores.Users.FindByEmail(emailValue.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
