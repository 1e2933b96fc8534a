package service

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers outbound email and SMS.
type Notifier interface {
	SendEmail(toEmail, toName, subject, plainText, html string) error
	SendSMS(toNumber, body string) error
}

type NotifierConfig struct {
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
}

// ProviderNotifier sends email through SendGrid and SMS through Twilio. A channel
// whose credentials are missing is logged and skipped.
type ProviderNotifier struct {
	cfg      NotifierConfig
	sendgrid *sendgrid.Client
	twilio   *twilio.RestClient
}

func NewNotifier(cfg NotifierConfig) *ProviderNotifier {
	n := &ProviderNotifier{cfg: cfg}
	if cfg.SendGridFromName == "" {
		n.cfg.SendGridFromName = "Valet"
	}
	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		n.sendgrid = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	} else {
		logrus.Warn("SendGrid is not configured, emails will only be logged")
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" {
		n.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username:   cfg.TwilioAccountSID,
			Password:   cfg.TwilioAuthToken,
			AccountSid: cfg.TwilioAccountSID,
		})
	} else {
		logrus.Warn("Twilio is not configured, SMS will only be logged")
	}
	return n
}

func (n *ProviderNotifier) SendEmail(toEmail, toName, subject, plainText, html string) error {
	if n.sendgrid == nil {
		logrus.WithFields(logrus.Fields{"to": toEmail, "subject": subject}).Info("Email skipped, no provider")
		return nil
	}

	from := mail.NewEmail(n.cfg.SendGridFromName, n.cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, html)

	response, err := n.sendgrid.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", toEmail, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	logrus.WithFields(logrus.Fields{
		"to":      toEmail,
		"subject": subject,
		"status":  response.StatusCode,
	}).Info("Email sent")
	return nil
}

func (n *ProviderNotifier) SendSMS(toNumber, body string) error {
	if n.twilio == nil {
		logrus.WithField("to", toNumber).Info("SMS skipped, no provider")
		return nil
	}
	if !strings.HasPrefix(toNumber, "+") {
		logrus.WithField("to", toNumber).Warn("Destination number is not in E.164 format")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(n.cfg.TwilioFromNumber)
	params.SetBody(body)

	resp, err := n.twilio.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", toNumber, err)
	}
	entry := logrus.WithField("to", toNumber)
	if resp != nil && resp.Sid != nil {
		entry = entry.WithField("sid", *resp.Sid)
	}
	entry.Info("SMS sent")
	return nil
}
