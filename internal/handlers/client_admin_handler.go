package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/httpresp"
	"github.com/BellezaEstetica/salon-scheduler/internal/middleware"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

// ======================================================
// ADMIN CLIENT MANAGEMENT
// ======================================================

type ClientAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ClientAdminHandler {
	return &ClientAdminHandler{db: db, audit: auditDispatcher}
}

func (h *ClientAdminHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

type UpdateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

func (h *ClientAdminHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client.Name = req.Name
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.Phone = req.Phone

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.Message(c, "Cliente atualizado com sucesso.")
}

type BlockClientRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

func (h *ClientAdminHandler) Block(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextClientID).(uint)
	id := c.Param("id")

	var req BlockClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client.Blocked = *req.Blocked
	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_block_client", "Erro ao bloquear/desbloquear cliente.")
		return
	}

	action := audit.ActionClientUnblocked
	message := "Cliente desbloqueado."
	if client.Blocked {
		action = audit.ActionClientBlocked
		message = "Cliente bloqueado."
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Message(c, message)
}

// Delete removes a client and, first, every appointment that references it:
// the cascade order avoids orphaned foreign keys.
func (h *ClientAdminHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextClientID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if client.IsAdmin {
		httperr.BadRequest(c, "cannot_delete_admin", "Não é possível excluir um administrador.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", client.ID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   audit.ActionClientDeleted,
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Message(c, "Cliente excluído com sucesso.")
}

// History lists a client's appointments newest first, with the charged value
// resolved through the snapshot fallback.
func (h *ClientAdminHandler) History(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Preload("Service").
		Where("client_id = ?", uint(id)).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao buscar histórico.")
		return
	}

	type historyItem struct {
		models.Appointment
		ServiceName  string  `json:"service_name"`
		ChargedValue float64 `json:"charged_value"`
	}

	items := make([]historyItem, 0, len(aps))
	for i := range aps {
		items = append(items, historyItem{
			Appointment:  aps[i],
			ServiceName:  aps[i].Service.Name,
			ChargedValue: domain.ChargedValue(&aps[i], &aps[i].Service),
		})
	}

	httpresp.List(c, items)
}
