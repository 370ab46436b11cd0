package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID                 uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrganizerID        uint64      `json:"organizer_id" gorm:"not null;index"`
	ShopID             *uint64     `json:"shop_id" gorm:"index"`
	Title              string      `json:"title" gorm:"not null"`
	Slug               string      `json:"slug" gorm:"uniqueIndex"`
	Description        string      `json:"description"`
	EventType          string      `json:"event_type"`
	Category           string      `json:"category"`
	StartDate          time.Time   `json:"start_date" gorm:"not null"`
	EndDate            *time.Time  `json:"end_date"`
	Location           string      `json:"location"`
	VenueName          string      `json:"venue_name"`
	VenueAddress       string      `json:"venue_address"`
	VenueCity          string      `json:"venue_city"`
	VenueState         string      `json:"venue_state"`
	VenueCountry       string      `json:"venue_country"`
	Latitude           float64     `json:"latitude"`
	Longitude          float64     `json:"longitude"`
	MeetingURL         string      `json:"meeting_url"`
	MaxAttendees       *int64      `json:"max_attendees"`
	TicketPrice        float64     `json:"ticket_price" gorm:"default:0"`
	IsFree             bool        `json:"is_free" gorm:"default:true"`
	IsPublished        bool        `json:"is_published" gorm:"default:false"`
	Status             EventStatus `json:"status" gorm:"default:'draft'"`
	ViewsCount         int64       `json:"views_count" gorm:"default:0"`
	RegistrationsCount int64       `json:"registrations_count" gorm:"default:0"`
	CreatedAt          time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

type EventRegistration struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID   uint64    `json:"event_id" gorm:"not null;uniqueIndex:idx_event_user"`
	UserID    uint64    `json:"user_id" gorm:"not null;uniqueIndex:idx_event_user"`
	Status    string    `json:"status" gorm:"default:'registered'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Joined attendee columns, organizer view only.
	FullName string `json:"full_name" gorm:"->;-:migration"`
	Email    string `json:"email" gorm:"->;-:migration"`
	Phone    string `json:"phone" gorm:"->;-:migration"`
}

type EventUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	EventType    *string    `json:"event_type"`
	Category     *string    `json:"category"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	VenueName    *string    `json:"venue_name"`
	VenueAddress *string    `json:"venue_address"`
	VenueCity    *string    `json:"venue_city"`
	VenueState   *string    `json:"venue_state"`
	VenueCountry *string    `json:"venue_country"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	MeetingURL   *string    `json:"meeting_url"`
	MaxAttendees *int64     `json:"max_attendees"`
	TicketPrice  *float64   `json:"ticket_price"`
	IsFree       *bool      `json:"is_free"`
	IsPublished  *bool      `json:"is_published"`
	Status       *string    `json:"status"`
}
