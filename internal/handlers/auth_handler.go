package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/auth"
	"github.com/BellezaEstetica/salon-scheduler/internal/config"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
	"github.com/BellezaEstetica/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	verifier auth.Verifier
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, verifier auth.Verifier) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, verifier: verifier}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailValid(email) || !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	var existing models.Client
	err := h.db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil && existing.Password != "":
		httperr.Conflict(c, "email_already_registered", "Este e-mail já está cadastrado.")
		return
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		httperr.Internal(c, "failed_to_register", "Erro ao registrar cliente.")
		return
	}

	stored, err := h.verifier.Hash(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Erro ao registrar cliente.")
		return
	}

	client := models.Client{
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Password: stored,
	}

	if existing.ID != 0 {
		// Lazily-created booking client claiming an account.
		client.ID = existing.ID
		client.IsAdmin = existing.IsAdmin
		client.Blocked = existing.Blocked
		err = h.db.Save(&client).Error
	} else {
		err = h.db.Create(&client).Error
	}
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Erro ao registrar cliente.")
		return
	}

	token, err := h.generateToken(&client)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"name":  client.Name,
		"email": client.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "E-mail e senha são obrigatórios.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao fazer login.")
		return
	}

	if !h.verifier.Verify(client.Password, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	if client.Blocked && !client.IsAdmin {
		httperr.Forbidden(c, "account_blocked", "Sua conta foi bloqueada. Entre em contato com o administrador.")
		return
	}

	token, err := h.generateToken(&client)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"name":     client.Name,
		"email":    client.Email,
		"is_admin": client.IsAdmin,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(client *models.Client) (string, error) {
	claims := jwt.MapClaims{
		"sub":   client.ID,
		"admin": client.IsAdmin,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
