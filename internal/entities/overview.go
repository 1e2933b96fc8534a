package entities

type HostOverview struct {
	ActiveListings       int `json:"activeListings"`
	PendingRequests      int `json:"pendingRequests"`
	UpcomingReservations int `json:"upcomingReservations"`
}
