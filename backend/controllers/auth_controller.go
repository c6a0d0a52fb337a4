package controllers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"codeprep/backend/config"
	"codeprep/backend/mailer"
	"codeprep/backend/models"
	"codeprep/backend/store"
	"codeprep/backend/utils"
)

type AuthController struct {
	Store  store.Users
	Cfg    *config.Config
	Mailer mailer.Sender
}

func NewAuthController(st store.Users, cfg *config.Config, m mailer.Sender) *AuthController {
	return &AuthController{Store: st, Cfg: cfg, Mailer: m}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the account and mails a signup OTP. The account is not
// usable for login until the OTP is verified or expires.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	if _, err := ac.Store.FindByEmail(req.Email); err == nil {
		return utils.BadRequest(c, "User already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	otp, err := generateOTP()
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not generate OTP")
	}
	expires := time.Now().Add(time.Duration(ac.Cfg.OTPTTLMinutes) * time.Minute)

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Solved:       []string{},
		SolvedDates:  []string{},
		Recent:       []models.RecentActivity{},
		OTP:          &otp,
		OTPExpires:   &expires,
	}
	if err := ac.Store.Create(&user); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	subject := "Your CodePrep Signup OTP"
	body := fmt.Sprintf("Your OTP for CodePrep signup is: %s. It is valid for %d minutes.",
		otp, ac.Cfg.OTPTTLMinutes)
	if err := ac.Mailer.Send(user.Email, subject, body); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "OTP sent to email",
		"user":        fiber.Map{"email": user.Email},
		"otpRequired": true,
	})
}

// Login checks credentials and issues a token. Accounts with an unexpired
// signup OTP are held at 403 until verified.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.BadRequest(c, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	if user.OTPPending(time.Now()) {
		return utils.Forbidden(c, "Please verify your email with the OTP sent during signup.")
	}

	token, err := utils.GenerateJWTToken(user.Email, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    fiber.Map{"email": user.Email},
	})
}

// VerifyOTP completes signup by clearing the pending code.
func (ac *AuthController) VerifyOTP(c *fiber.Ctx) error {
	type verifyInput struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	var req verifyInput
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	if user.OTP == nil || user.OTPExpires == nil {
		return utils.BadRequest(c, "No OTP requested")
	}
	if *user.OTP != req.OTP {
		return utils.Unauthorized(c, "Invalid OTP")
	}
	if user.OTPExpires.Before(time.Now()) {
		return utils.Unauthorized(c, "OTP expired")
	}

	user.OTP = nil
	user.OTPExpires = nil
	if err := ac.Store.Save(user); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	token, err := utils.GenerateJWTToken(user.Email, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"message": "OTP verified, signup successful",
		"token":   token,
		"user":    fiber.Map{"email": user.Email},
	})
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
