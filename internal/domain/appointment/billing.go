package appointment

import "github.com/BellezaEstetica/salon-scheduler/internal/models"

// ChargedValue resolves the amount billed for an appointment: the snapshot
// taken at booking time when present, otherwise the service's current price
// (legacy rows created before snapshotting existed).
func ChargedValue(ap *models.Appointment, svc *models.Service) float64 {
	if ap.ChargedAmount != nil {
		return *ap.ChargedAmount
	}
	if svc != nil {
		return svc.Price
	}
	return 0
}

// Snapshot captures the service's current price onto the appointment.
func Snapshot(ap *models.Appointment, svc *models.Service) {
	price := svc.Price
	ap.ChargedAmount = &price
}
