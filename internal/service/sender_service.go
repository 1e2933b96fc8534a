package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	"github.com/sirupsen/logrus"
)

var inquiryEmailTemplate = template.Must(template.New("inquiry").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif;">
  <p>Hello {{.UserName}},</p>
  <p>{{.StatusMessage}}</p>
  <table>
    <tr><td>Event</td><td>{{.EventType}}</td></tr>
    <tr><td>Date</td><td>{{.EventDate}}</td></tr>
    <tr><td>Attendees</td><td>{{.Attendees}}</td></tr>
    {{if .ListingAddr}}<tr><td>Location</td><td>{{.ListingAddr}}</td></tr>{{end}}
  </table>
  <p>&copy; {{.CurrentYear}} Valet</p>
</body>
</html>`))

// SenderService composes customer-facing messages and hands them to a Notifier.
// Delivery is asynchronous; failures are only logged.
type SenderService struct {
	Notifier Notifier
	async    func(func())
	// inquiryHTML overrides inquiryEmailTemplate when set.
	inquiryHTML *template.Template
}

func NewSenderService(n Notifier) *SenderService {
	return &SenderService{Notifier: n, async: func(f func()) { go f() }}
}

func (s *SenderService) SendInquiryUpdate(inquiry db.EventInquiry, listingAddress string) {
	var statusMessage, smsText string
	switch inquiry.Status {
	case db.InquiryContacted:
		statusMessage = "The host has reviewed your event inquiry and will contact you shortly."
		smsText = fmt.Sprintf("Valet: the host accepted your %s inquiry for %s and will be in touch.",
			inquiry.EventType, inquiry.EventDate.Format("02 Jan"))
	case db.InquiryRejected:
		statusMessage = "Unfortunately the host is unable to accommodate your event."
		smsText = fmt.Sprintf("Valet: the host declined your %s inquiry for %s.",
			inquiry.EventType, inquiry.EventDate.Format("02 Jan"))
	default:
		return
	}

	data := entities.InquiryEmailData{
		UserName:      inquiry.UserName,
		EventType:     inquiry.EventType,
		EventDate:     inquiry.EventDate.Format("02 Jan 2006"),
		Attendees:     inquiry.NumberOfAttendees,
		ListingAddr:   listingAddress,
		StatusMessage: statusMessage,
		CurrentYear:   time.Now().Year(),
	}
	subject := fmt.Sprintf("Your %s inquiry is %s", inquiry.EventType, inquiry.Status)
	plain := fmt.Sprintf("Hello %s,\n\n%s\n\nEvent: %s\nDate: %s\nAttendees: %d\n\nValet",
		data.UserName, statusMessage, data.EventType, data.EventDate, data.Attendees)

	tmpl := inquiryEmailTemplate
	if s.inquiryHTML != nil {
		tmpl = s.inquiryHTML
	}
	// A render failure falls back to a plain-text only email.
	var html string
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logrus.WithError(err).WithField("inquiry_id", inquiry.ID).Error("Failed to render inquiry email")
	} else {
		html = buf.String()
	}

	to, name, phone := inquiry.UserEmail, inquiry.UserName, inquiry.UserPhone
	s.async(func() {
		if err := s.Notifier.SendEmail(to, name, subject, plain, html); err != nil {
			logrus.WithError(err).WithField("inquiry_id", inquiry.ID).Error("Inquiry email failed")
		}
		if phone == "" {
			return
		}
		if err := s.Notifier.SendSMS(phone, smsText); err != nil {
			logrus.WithError(err).WithField("inquiry_id", inquiry.ID).Error("Inquiry SMS failed")
		}
	})
}

func (s *SenderService) SendWaitlistWelcome(entry db.WaitlistEntry) {
	subject := "You're on the Valet waitlist"
	plain := fmt.Sprintf("Thanks for joining the Valet waitlist as %s. We'll email %s when we launch in your area.",
		roleLabel(entry.Role), entry.Email)
	html := "<p>" + template.HTMLEscapeString(plain) + "</p>"

	s.async(func() {
		if err := s.Notifier.SendEmail(entry.Email, "", subject, plain, html); err != nil {
			logrus.WithError(err).WithField("email", entry.Email).Error("Waitlist email failed")
		}
	})
}

func roleLabel(r db.UserRole) string {
	switch r {
	case db.RoleHost:
		return "a host"
	case db.RoleEventPlanner:
		return "an event planner"
	default:
		return "a driver"
	}
}
