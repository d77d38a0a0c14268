package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/keith-codez/Finance-Backend/internal/auth"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

type AuthHandler struct {
	Users  store.UserStore
	Tokens *auth.Issuer
}

func NewAuthHandler(users store.UserStore, tokens *auth.Issuer) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Register creates the account and its empty wallet in one shot. No tokens
// are issued; the client logs in separately.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if strings.TrimSpace(body.Username) == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	ctx := auth.Context(c)
	if _, err := h.Users.CreateUserWithWallet(ctx, body.Username, string(hashed)); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return fiber.NewError(fiber.StatusBadRequest, "Username already taken")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Login checks the credentials and issues an access/refresh token pair. A
// missing user and a wrong password produce the same response on purpose.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	ctx := auth.Context(c)
	u, err := h.Users.UserByUsername(ctx, body.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
	}

	pair, err := h.Tokens.IssuePair(u.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.JSON(pair)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var body refreshRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	userID, err := h.Tokens.Verify(body.Refresh, auth.TypeRefresh)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	// The account must still exist for the refresh to be honored.
	if _, err := h.Users.UserByID(auth.Context(c), userID); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	access, err := h.Tokens.IssueAccess(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.JSON(fiber.Map{"access": access})
}
