package entities

type InquiryEmailData struct {
	UserName      string
	EventType     string
	EventDate     string
	Attendees     int
	ListingAddr   string
	StatusMessage string
	CurrentYear   int
}
