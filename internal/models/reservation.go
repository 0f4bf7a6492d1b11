package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationStatus is the closed set of states a table booking can be in.
// The application only ever creates pending reservations; the staff process
// moves them forward.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Reservation is a persisted table-booking request.
// Date is the calendar day in YYYY-MM-DD form and TimeSlot one of the
// fixed half-hour evening slots.
type Reservation struct {
	ID           string            `gorm:"primaryKey" json:"id"`
	UserID       string            `gorm:"column:usuario_id;index;not null" json:"user_id"`
	Date         string            `gorm:"column:data_reserva;not null" json:"date"`
	TimeSlot     string            `gorm:"column:hora_reserva;not null" json:"time_slot"`
	PartySize    int               `gorm:"column:numero_pessoas" json:"party_size"`
	ContactName  string            `gorm:"column:nome_contato" json:"contact_name"`
	ContactPhone string            `gorm:"column:telefone_contato" json:"contact_phone"`
	Notes        string            `gorm:"column:observacoes" json:"notes"`
	Status       ReservationStatus `gorm:"column:status;default:'pending'" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"-"`
}

func (Reservation) TableName() string {
	return "reservas"
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
