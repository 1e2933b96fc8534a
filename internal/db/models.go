package db

import "time"

type ApprovalMode string

const (
	ApprovalAutomatic ApprovalMode = "AUTOMATIC"
	ApprovalManual    ApprovalMode = "MANUAL"
)

func (m ApprovalMode) Valid() bool {
	return m == ApprovalAutomatic || m == ApprovalManual
}

type RateType string

const (
	RateHourly RateType = "hourly"
	RateFlat   RateType = "flat"
)

func (t RateType) Valid() bool {
	return t == RateHourly || t == RateFlat
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationApproved  ReservationStatus = "APPROVED"
	ReservationRejected  ReservationStatus = "REJECTED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationApproved, ReservationRejected, ReservationCompleted:
		return true
	}
	return false
}

type EventInquiryStatus string

const (
	InquiryPending   EventInquiryStatus = "PENDING"
	InquiryContacted EventInquiryStatus = "CONTACTED"
	InquiryRejected  EventInquiryStatus = "REJECTED"
)

func (s EventInquiryStatus) Valid() bool {
	switch s {
	case InquiryPending, InquiryContacted, InquiryRejected:
		return true
	}
	return false
}

type UserRole string

const (
	RoleHost         UserRole = "HOST"
	RoleDriver       UserRole = "DRIVER"
	RoleEventPlanner UserRole = "EVENT_PLANNER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleHost, RoleDriver, RoleEventPlanner:
		return true
	}
	return false
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Availability is a daily window in "HH:MM". End before Start means the window runs overnight.
type Availability struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Listing struct {
	ID                string       `json:"id"`
	HostID            string       `json:"hostId"`
	Address           string       `json:"address"`
	Description       string       `json:"description"`
	Rate              float64      `json:"rate"`
	RateType          RateType     `json:"rateType"`
	Availability      Availability `json:"availability"`
	ApprovalMode      ApprovalMode `json:"approvalMode"`
	Location          Location     `json:"location"`
	SuitableForEvents bool         `json:"suitableForEvents,omitempty"`
}

type Reservation struct {
	ID        string            `json:"id"`
	ListingID string            `json:"listingId"`
	DriverID  string            `json:"driverId"`
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Status    ReservationStatus `json:"status"`
}

type EventInquiry struct {
	ID                string             `json:"id"`
	ListingID         string             `json:"listingId"`
	HostID            string             `json:"hostId"`
	UserName          string             `json:"userName"`
	UserEmail         string             `json:"userEmail"`
	UserPhone         string             `json:"userPhone,omitempty"`
	EventType         string             `json:"eventType"`
	EventDate         time.Time          `json:"eventDate"`
	NumberOfAttendees int                `json:"numberOfAttendees"`
	Message           string             `json:"message"`
	Status            EventInquiryStatus `json:"status"`
}

type WaitlistEntry struct {
	ID        int64             `json:"id,omitempty"`
	Role      UserRole          `json:"role"`
	Email     string            `json:"email"`
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewListing holds the host-supplied listing fields. Id, host and location are assigned by the store.
type NewListing struct {
	Address           string
	Description       string
	Rate              float64
	RateType          RateType
	Availability      Availability
	ApprovalMode      ApprovalMode
	SuitableForEvents bool
}

// NewReservation holds the driver-supplied reservation fields. Status is derived, never supplied.
type NewReservation struct {
	ListingID string
	StartTime time.Time
	EndTime   time.Time
}

type NewEventInquiry struct {
	ListingID         string
	UserName          string
	UserEmail         string
	UserPhone         string
	EventType         string
	EventDate         time.Time
	NumberOfAttendees int
	Message           string
}
