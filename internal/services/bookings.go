package services

import (
	"errors"
	"time"

	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotUniverse is the fixed set of daily booking slots, in display
// order. Availability results preserve this order.
var SlotUniverse = []string{
	"09:00 am", "10:00 am", "11:00 am", "12:00 pm",
	"01:00 pm", "02:00 pm", "03:00 pm", "04:00 pm", "05:00 pm",
}

// bookingDateLayout is the wire format for booking dates.
const bookingDateLayout = "2006-01-02"

// BookingInput is the payload for reserving a slot.
type BookingInput struct {
	TherapistID uint64 `json:"therapistId"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
}

// TherapistView is the public projection of a therapist account.
type TherapistView struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

// ParseBookingDate parses a YYYY-MM-DD date as UTC midnight. All day
// bounds in this service are UTC; the server's local zone never leaks
// into slot arithmetic.
func ParseBookingDate(date string) (time.Time, error) {
	d, err := time.Parse(bookingDateLayout, date)
	if err != nil {
		return time.Time{}, types.ValidationError("Invalid date format")
	}
	return d.UTC(), nil
}

// ListTherapists returns all accounts with the therapist role.
func ListTherapists(db *gorm.DB) ([]TherapistView, error) {
	var users []models.User
	if err := db.Where("role = ?", models.RoleTherapist).Find(&users).Error; err != nil {
		return nil, err
	}

	therapists := make([]TherapistView, 0, len(users))
	for _, u := range users {
		name := u.FirstName
		if u.LastName != "" {
			name += " " + u.LastName
		}
		therapists = append(therapists, TherapistView{
			ID:             u.ID,
			Name:           name,
			Email:          u.Email,
			PhotoURL:       u.PhotoURL,
			Specialization: u.Specialization,
			Bio:            u.Bio,
		})
	}
	return therapists, nil
}

// GetAvailability returns the free slots for a therapist on a date:
// the fixed universe minus slots held by pending or confirmed
// bookings, in universe order.
func GetAvailability(db *gorm.DB, therapistID uint64, date string) ([]string, error) {
	if err := requireTherapist(db, therapistID); err != nil {
		return nil, err
	}

	day, err := ParseBookingDate(date)
	if err != nil {
		return nil, err
	}

	var taken []string
	err = dayBookings(db, therapistID, day).
		Pluck("time_slot", &taken).Error
	if err != nil {
		return nil, err
	}

	takenSet := make(map[string]struct{}, len(taken))
	for _, slot := range taken {
		takenSet[slot] = struct{}{}
	}

	available := make([]string, 0, len(SlotUniverse))
	for _, slot := range SlotUniverse {
		if _, ok := takenSet[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available, nil
}

// CreateBooking reserves a slot with status pending. The conflict check
// runs first for a clean error; the (therapist, date, slot) unique
// index makes the insert itself conditional, so a racing duplicate
// surfaces as ConflictError instead of a second row.
func CreateBooking(db *gorm.DB, ownerUserID uint64, in BookingInput) (*models.Booking, error) {
	if in.TherapistID == 0 || in.Date == "" || in.TimeSlot == "" {
		return nil, types.ValidationError("Missing required booking details")
	}

	if err := requireTherapist(db, in.TherapistID); err != nil {
		return nil, err
	}

	day, err := ParseBookingDate(in.Date)
	if err != nil {
		return nil, err
	}

	var count int64
	err = dayBookings(db, in.TherapistID, day).
		Where("time_slot = ?", in.TimeSlot).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.ConflictError("This slot is already booked.")
	}

	active := true
	booking := models.Booking{
		TherapistID: in.TherapistID,
		UserID:      ownerUserID,
		SlotDate:    day,
		TimeSlot:    in.TimeSlot,
		Status:      models.BookingPending,
		Active:      &active,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&booking)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race between check and insert.
		return nil, types.ConflictError("This slot is already booked.")
	}

	return &booking, nil
}

// CancelBooking marks the caller's booking cancelled and clears its
// active flag, dropping the row out of the slot unique index so the
// slot can be reserved again.
func CancelBooking(db *gorm.DB, ownerUserID, bookingID uint64) (*models.Booking, error) {
	var booking models.Booking
	err := db.Where("id = ? AND user_id = ?", bookingID, ownerUserID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Booking not found for this user")
		}
		return nil, err
	}

	if booking.Status == models.BookingCancelled {
		return &booking, nil
	}

	updates := map[string]interface{}{
		"status": models.BookingCancelled,
		"active": nil,
	}
	if err := db.Model(&booking).Updates(updates).Error; err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	booking.Active = nil

	return &booking, nil
}

// ListUserBookings returns the caller's bookings, soonest first.
func ListUserBookings(db *gorm.DB, ownerUserID uint64) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("user_id = ?", ownerUserID).
		Order("slot_date ASC, time_slot ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// requireTherapist fails NotFound unless the id names a user with the
// therapist role.
func requireTherapist(db *gorm.DB, therapistID uint64) error {
	var therapist models.User
	err := db.Where("id = ? AND role = ?", therapistID, models.RoleTherapist).
		First(&therapist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFoundError("Therapist not found")
		}
		return err
	}
	return nil
}

// dayBookings scopes a query to a therapist's pending/confirmed
// bookings within [day, day+24h).
func dayBookings(db *gorm.DB, therapistID uint64, day time.Time) *gorm.DB {
	return db.Model(&models.Booking{}).
		Where("therapist_id = ?", therapistID).
		Where("slot_date >= ? AND slot_date < ?", day, day.Add(24*time.Hour)).
		Where("status IN ?", []string{models.BookingPending, models.BookingConfirmed})
}
