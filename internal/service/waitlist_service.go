package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/ValetTech/Valet/internal/db"
	"github.com/ValetTech/Valet/internal/entities"
	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/sirupsen/logrus"
)

type WaitlistService struct {
	Repo   repository.WaitlistRepository
	Sender *SenderService
	Now    func() time.Time
}

func NewWaitlistService(repo repository.WaitlistRepository, sender *SenderService) *WaitlistService {
	return &WaitlistService{Repo: repo, Sender: sender, Now: time.Now}
}

// Join records a sign-up and acknowledges it with the email and role it was stored under.
func (s *WaitlistService) Join(ctx context.Context, role db.UserRole, email string, answers map[string]string) (entities.WaitlistAck, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.WaitlistAck{}, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.WaitlistAck{}, fmt.Errorf("email %q: %w", email, apperrors.ErrValidation)
	}
	if !role.Valid() {
		return entities.WaitlistAck{}, fmt.Errorf("role %q: %w", role, apperrors.ErrValidation)
	}
	if answers == nil {
		answers = map[string]string{}
	}

	entry := &db.WaitlistEntry{
		Role:      role,
		Email:     email,
		Answers:   answers,
		CreatedAt: s.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, entry); err != nil {
		return entities.WaitlistAck{}, fmt.Errorf("failed to save waitlist entry: %w", err)
	}
	logrus.WithFields(logrus.Fields{"email": email, "role": role}).Info("Waitlist entry added")

	if s.Sender != nil {
		s.Sender.SendWaitlistWelcome(*entry)
	}
	return entities.WaitlistAck{Email: email, Role: string(role)}, nil
}
