package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date is the calendar day ("YYYY-MM-DD"), Time the half-hour slot
	// label ("HH:MM").
	Date string `gorm:"size:10;index:idx_appointments_slot,priority:1" json:"date"`
	Time string `gorm:"size:5;index:idx_appointments_slot,priority:2" json:"time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	// Price snapshot taken at booking time. Nil only on legacy rows; read
	// paths fall back to the service's current price.
	ChargedAmount *float64 `json:"charged_amount"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
