package entities

import "time"

type ListingRequest struct {
	Address      string  `json:"address" validate:"required"`
	Description  string  `json:"description"`
	Rate         float64 `json:"rate" validate:"gte=0"`
	RateType     string  `json:"rateType" validate:"required,oneof=hourly flat"`
	Availability struct {
		Start string `json:"start" validate:"required"`
		End   string `json:"end" validate:"required"`
	} `json:"availability"`
	ApprovalMode      string `json:"approvalMode" validate:"required,oneof=AUTOMATIC MANUAL"`
	SuitableForEvents bool   `json:"suitableForEvents"`
}

type ReservationRequest struct {
	ListingID string    `json:"listingId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	Status    string    `json:"status"` // ignored, the listing's approval mode decides
}

type EventInquiryRequest struct {
	ListingID         string    `json:"listingId" validate:"required"`
	UserName          string    `json:"userName" validate:"required"`
	UserEmail         string    `json:"userEmail" validate:"required,email"`
	UserPhone         string    `json:"userPhone"`
	EventType         string    `json:"eventType" validate:"required"`
	EventDate         time.Time `json:"eventDate" validate:"required"`
	NumberOfAttendees int       `json:"numberOfAttendees" validate:"gt=0"`
	Message           string    `json:"message"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type WaitlistRequest struct {
	Role    string            `json:"role" validate:"required,oneof=HOST DRIVER EVENT_PLANNER"`
	Email   string            `json:"email" validate:"required,email"`
	Answers map[string]string `json:"answers"`
}

type WaitlistAck struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type NearbySearchRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Query     string  `json:"query" validate:"required"`
}

type EarningsRequest struct {
	Rate       float64  `json:"rate" validate:"gte=0"`
	SpotCount  int      `json:"spotCount" validate:"gte=1"`
	ActiveDays []string `json:"activeDays"`
	StartTime  string   `json:"startTime" validate:"required"`
	EndTime    string   `json:"endTime" validate:"required"`
}
