package models

import (
	"time"
)

// Booking status values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking reserves one of the nine fixed daily slots with a therapist.
// The composite unique index on (therapist_id, slot_date, time_slot,
// active) makes the reservation an insert-if-absent: of two racing
// requests for the same triple, exactly one row lands. Active is true
// for pending/confirmed rows and NULL once cancelled, so cancelled rows
// drop out of the index and the slot can be reserved again.
type Booking struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TherapistID uint64    `gorm:"not null;index:idx_booking_slot,unique" json:"therapistId"`
	UserID      uint64    `gorm:"not null;index" json:"userId"`
	SlotDate    time.Time `gorm:"not null;index:idx_booking_slot,unique" json:"date"`
	TimeSlot    string    `gorm:"size:16;not null;index:idx_booking_slot,unique" json:"timeSlot"`
	Status      string    `gorm:"size:16;not null;default:pending" json:"status"`
	Active      *bool     `gorm:"index:idx_booking_slot,unique" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
