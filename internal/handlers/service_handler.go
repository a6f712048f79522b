package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/httpresp"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// PUBLIC LIST
// ======================================================

// List returns active services; `?all=true` (admin screens) returns every
// service including deactivated ones.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Service{})

	if c.Query("all") != "true" {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// ADMIN CRUD
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, duração e preço são obrigatórios.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Description: req.Description,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao adicionar serviço.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	// Price edits do not touch existing appointments: their charged value
	// was snapshotted at booking time.
	svc.Name = req.Name
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	svc.Description = req.Description

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

type ToggleServiceRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *ServiceHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	var req ToggleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	svc.Active = *req.Active
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_toggle_service", "Erro ao atualizar status.")
		return
	}

	httpresp.Message(c, "Status do serviço atualizado.")
}
