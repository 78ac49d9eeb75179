package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Capacity bounds enforced when a tee time is entered or edited.
const (
	MinAvailableSlots = 1
	MaxAvailableSlots = 20
)

// TeeTime represents one bookable tee-off entry for a course. The date fixes
// which calendar day the entry belongs to and never changes after creation;
// AvailableSlots is a capacity label, not a live booking counter.
type TeeTime struct {
	ID             string    `bson:"id" json:"id"`
	CourseID       string    `bson:"courseId" json:"courseId"`
	CourseName     string    `bson:"courseName" json:"courseName"` // denormalized at creation, not synced on rename
	Date           string    `bson:"date" json:"date"`             // "YYYY-MM-DD"
	Time           string    `bson:"time" json:"time"`             // "HH:MM", 24-hour
	AvailableSlots int       `bson:"availableSlots" json:"availableSlots"`
	AgentPrice     int       `bson:"agentPrice" json:"agentPrice"`
	Note           string    `bson:"note" json:"note"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
	CreatedBy      *string   `bson:"createdBy" json:"createdBy"`
}

// TeeTimePayload is the validated field set the editor hands to the
// controller when creating a tee time.
type TeeTimePayload struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSlots int    `json:"availableSlots"`
	AgentPrice     int    `json:"agentPrice"`
	Note           string `json:"note"`
}

// TeeTimeUpdate is the partial field set applied to an existing tee time.
// Date is deliberately absent: the day a slot belongs to is fixed at creation.
type TeeTimeUpdate struct {
	Time           string `json:"time"`
	AvailableSlots int    `json:"availableSlots"`
	AgentPrice     int    `json:"agentPrice"`
	Note           string `json:"note"`
}

// ValidateTeeTimeFields checks the entry-time bounds shared by create and
// update: time format, capacity range, non-negative price.
func ValidateTeeTimeFields(timeStr string, availableSlots, agentPrice int) error {
	if _, _, err := ParseSlotTime(timeStr); err != nil {
		return err
	}
	if availableSlots < MinAvailableSlots || availableSlots > MaxAvailableSlots {
		return fmt.Errorf("availableSlots must be between %d and %d", MinAvailableSlots, MaxAvailableSlots)
	}
	if agentPrice < 0 {
		return fmt.Errorf("agentPrice must not be negative")
	}
	return nil
}

// ComposeSlotTime builds the zero-padded "HH:MM" form from hour and minute.
func ComposeSlotTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseSlotTime splits an "HH:MM" string back into hour and minute,
// rejecting anything outside a 24-hour clock.
func ParseSlotTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in time %q", s)
	}
	return hour, minute, nil
}
