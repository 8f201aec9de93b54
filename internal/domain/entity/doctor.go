package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DaySchedule is one weekday's bookable slot labels. An empty slot list means
// the doctor is closed that day.
type DaySchedule struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// Availability is the ordered weekly schedule, persisted as a JSONB document.
type Availability []DaySchedule

// Value returns json value, implements driver.Valuer interface
func (a Availability) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan scans value into Availability, implements sql.Scanner interface
func (a *Availability) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result Availability
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*a = result
	return nil
}

// SlotsFor returns the slot labels for a weekday name ("Monday", ...).
func (a Availability) SlotsFor(day string) []string {
	for _, d := range a {
		if d.Day == day {
			return d.Slots
		}
	}
	return nil
}

// HasSlot checks if the given time label is bookable on the given weekday.
func (a Availability) HasSlot(day, slot string) bool {
	for _, s := range a.SlotsFor(day) {
		if s == slot {
			return true
		}
	}
	return false
}

// Doctor represents a provider in the directory
type Doctor struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null;index" json:"name"`
	Specialty    string       `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Bio          string       `gorm:"type:text" json:"bio,omitempty"`
	ImageURL     string       `gorm:"type:text" json:"image_url,omitempty"`
	Availability Availability `gorm:"type:jsonb" json:"availability"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
