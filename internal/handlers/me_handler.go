package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/auth"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/httpresp"
	"github.com/BellezaEstetica/salon-scheduler/internal/middleware"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

type MeHandler struct {
	db       *gorm.DB
	verifier auth.Verifier
}

func NewMeHandler(db *gorm.DB, verifier auth.Verifier) *MeHandler {
	return &MeHandler{db: db, verifier: verifier}
}

type UpdateMeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`

	// Both required together to change the password.
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         client.ID,
		"name":       client.Name,
		"email":      client.Email,
		"phone":      client.Phone,
		"is_admin":   client.IsAdmin,
		"created_at": client.CreatedAt,
	})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client.Name = req.Name
	client.Phone = req.Phone

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			httperr.BadRequest(c, "weak_password", "A senha deve ter no mínimo 6 caracteres.")
			return
		}
		if req.CurrentPassword == "" {
			httperr.BadRequest(c, "current_password_required", "Senha atual é obrigatória para alterar a senha.")
			return
		}
		if !h.verifier.Verify(client.Password, req.CurrentPassword) {
			httperr.Unauthorized(c, "wrong_password", "Senha atual incorreta.")
			return
		}

		stored, err := h.verifier.Hash(req.NewPassword)
		if err != nil {
			httperr.Internal(c, "failed_to_update", "Erro ao atualizar dados.")
			return
		}
		client.Password = stored
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update", "Erro ao atualizar dados.")
		return
	}

	httpresp.Message(c, "Dados atualizados com sucesso.")
}
