package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/timezone"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type rankedItem struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type monthlyStats struct {
	Month string `json:"month"`

	RealizedRevenue float64 `json:"realized_revenue"`
	CompletedCount  int64   `json:"completed_count"`
	FutureRevenue   float64 `json:"future_revenue"`
	ConfirmedCount  int64   `json:"confirmed_count"`
	TotalRevenue    float64 `json:"total_revenue"`

	DistinctClients     int64  `json:"distinct_clients"`
	MostRecurrentClient string `json:"most_recurrent_client"`
	MostPerformed       string `json:"most_performed_service"`

	TopServices []rankedItem `json:"top_services"`
	TopClients  []rankedItem `json:"top_clients"`
}

// GetMonthly aggregates revenue and attendance for one month. Completed
// appointments count as realized revenue, confirmed ones as future revenue.
// The charged amount snapshot wins over the live service price.
func (h *StatsHandler) GetMonthly(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = timezone.Now().Format("2006-01")
	}
	if !monthPattern.MatchString(month) {
		httperr.BadRequest(c, "invalid_month", "Mês inválido. Use o formato YYYY-MM.")
		return
	}

	stats := monthlyStats{
		Month:       month,
		TopServices: []rankedItem{},
		TopClients:  []rankedItem{},
	}

	const revenueExpr = "COALESCE(appointments.charged_amount, services.price, 0)"

	type bucket struct {
		Total float64
		Count int64
	}

	var realized, future bucket
	base := func(status string) *gorm.DB {
		return h.db.Table("appointments").
			Select("COALESCE(SUM("+revenueExpr+"), 0) AS total, COUNT(*) AS count").
			Joins("LEFT JOIN services ON services.id = appointments.service_id").
			Where("substr(appointments.date, 1, 7) = ?", month).
			Where("appointments.status = ?", status)
	}

	if err := base("completed").Scan(&realized).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_statistics", "Erro ao calcular estatísticas.")
		return
	}
	if err := base("confirmed").Scan(&future).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_statistics", "Erro ao calcular estatísticas.")
		return
	}

	stats.RealizedRevenue = realized.Total
	stats.CompletedCount = realized.Count
	stats.FutureRevenue = future.Total
	stats.ConfirmedCount = future.Count
	stats.TotalRevenue = realized.Total + future.Total

	if err := h.db.Table("appointments").
		Where("substr(appointments.date, 1, 7) = ?", month).
		Where("appointments.status <> ?", "cancelled").
		Distinct("appointments.client_id").
		Count(&stats.DistinctClients).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_statistics", "Erro ao calcular estatísticas.")
		return
	}

	if err := h.db.Table("appointments").
		Select("clients.name AS name, COUNT(*) AS count, COALESCE(SUM("+revenueExpr+"), 0) AS total").
		Joins("JOIN clients ON clients.id = appointments.client_id").
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Where("substr(appointments.date, 1, 7) = ?", month).
		Where("appointments.status <> ?", "cancelled").
		Group("clients.name").
		Order("count DESC, total DESC").
		Limit(5).
		Scan(&stats.TopClients).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_statistics", "Erro ao calcular estatísticas.")
		return
	}
	if len(stats.TopClients) > 0 {
		stats.MostRecurrentClient = stats.TopClients[0].Name
	}

	if err := h.db.Table("appointments").
		Select("services.name AS name, COUNT(*) AS count, COALESCE(SUM("+revenueExpr+"), 0) AS total").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("substr(appointments.date, 1, 7) = ?", month).
		Where("appointments.status <> ?", "cancelled").
		Group("services.name").
		Order("count DESC, total DESC").
		Limit(5).
		Scan(&stats.TopServices).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_statistics", "Erro ao calcular estatísticas.")
		return
	}
	if len(stats.TopServices) > 0 {
		stats.MostPerformed = stats.TopServices[0].Name
	}

	c.JSON(http.StatusOK, stats)
}
