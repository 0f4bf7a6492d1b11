package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

var (
	ErrInvalidReservationDate   = errors.New("reservation date is missing or invalid")
	ErrReservationInPast        = errors.New("reservation date is in the past")
	ErrInvalidTimeSlot          = errors.New("time slot is not available")
	ErrInvalidPartySize         = errors.New("party size must be between 1 and 20")
	ErrContactRequired          = errors.New("contact name and phone are required")
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrInvalidReservationStatus = errors.New("invalid reservation status")
)

// timeSlots is the fixed grid of evening slots a table can be booked for.
var timeSlots = []string{
	"18:00", "18:30", "19:00", "19:30", "20:00",
	"20:30", "21:00", "21:30", "22:00", "22:30",
}

// ReservationInput carries the booking form fields.
type ReservationInput struct {
	Date         string // YYYY-MM-DD
	TimeSlot     string
	PartySize    int
	ContactName  string
	ContactPhone string
	Notes        string
}

// ReservationService creates and lists table bookings. Status changes come
// only from the staff process.
type ReservationService interface {
	Create(userID string, input ReservationInput) (*models.Reservation, error)
	GetByUser(userID string) ([]models.Reservation, error)
	UpdateStatus(reservationID string, status models.ReservationStatus) error
}

type reservationService struct {
	db *gorm.DB
}

// NewReservationService creates a new instance of ReservationService
func NewReservationService(db *gorm.DB) ReservationService {
	return &reservationService{db: db}
}

func (s *reservationService) Create(userID string, input ReservationInput) (*models.Reservation, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, ErrInvalidReservationDate
	}

	// Compare calendar days, not instants: truncating an instant shifts
	// "today" by the local UTC offset and would reject valid same-day
	// bookings east of UTC.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrReservationInPast
	}

	if !validTimeSlot(input.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}
	if input.PartySize < 1 || input.PartySize > 20 {
		return nil, ErrInvalidPartySize
	}
	if strings.TrimSpace(input.ContactName) == "" || strings.TrimSpace(input.ContactPhone) == "" {
		return nil, ErrContactRequired
	}

	reservation := &models.Reservation{
		UserID:       userID,
		Date:         input.Date,
		TimeSlot:     input.TimeSlot,
		PartySize:    input.PartySize,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		Notes:        input.Notes,
		Status:       models.ReservationPending,
	}
	if err := s.db.Create(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) GetByUser(userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.
		Where("usuario_id = ?", userID).
		Order("data_reserva desc, hora_reserva desc").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *reservationService) UpdateStatus(reservationID string, status models.ReservationStatus) error {
	if !status.Valid() {
		return ErrInvalidReservationStatus
	}

	result := s.db.Model(&models.Reservation{}).Where("id = ?", reservationID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func validTimeSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
