package domain

import "time"

// SlotsConfig represents the slot computation settings for a salon.
// Supports hierarchical configuration:
// 1. Therapist-specific (salon_id, therapist_id)
// 2. Salon-wide (salon_id, NULL)
type SlotsConfig struct {
	ID                 int64
	SalonID            int64
	TherapistID        *int64 // NULL = config for all therapists of the salon
	StepMinutes        int    // Grid step for the client booking flow
	AdminStepMinutes   int    // Grid step for the admin calendar view
	LeadTimeMinutes    int    // Minimum notice before a same-day slot may be booked
	AdvanceBookingDays int    // 0 = unlimited
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsSalonWide returns true if this is a salon-wide configuration
func (c *SlotsConfig) IsSalonWide() bool {
	return c.TherapistID == nil
}

// IsTherapistSpecific returns true if this configuration overrides settings
// for a single therapist
func (c *SlotsConfig) IsTherapistSpecific() bool {
	return c.TherapistID != nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// bookings can be made
func (c *SlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultSlotsConfig returns the configuration used when a salon has no
// stored configuration
func DefaultSlotsConfig(salonID int64) *SlotsConfig {
	return &SlotsConfig{
		SalonID:            salonID,
		StepMinutes:        DefaultStepMinutes,
		AdminStepMinutes:   DefaultAdminStepMinutes,
		LeadTimeMinutes:    DefaultLeadTimeMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}
