package contactService

import (
	"context"
	"time"

	contacts "PortfolioGolang/internal/api/contact"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/smtp"

	"github.com/sirupsen/logrus"
)

// SubmitContact persists an already validated message. The owner notification is
// best effort and never fails the submission.
func (s *contactService) SubmitContact(ctx context.Context, req contacts.ContactRequest) (entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Contact{}, err
	}
	defer repo.Rollback()

	contact := entity.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	id, err := repo.Contacts.CreateContact(ctx, contact)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create contact message")
		return entity.Contact{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit contact message")
		return entity.Contact{}, err
	}

	contact.ID = id

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"contact_id": id,
	}).Info("Contact message received")

	s.notify(requestID, contact)

	return contact, nil
}

func (s *contactService) notify(requestID string, contact entity.Contact) {
	if s.smtpMailer == nil {
		return
	}

	err := s.smtpMailer.SendContactNotification(smtp.Message{
		Name:    contact.Name,
		Email:   contact.Email,
		Subject: contact.Subject,
		Body:    contact.Message,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"contact_id": contact.ID,
			"error":      err.Error(),
		}).Warn("Failed to send contact notification")
	}
}

func (s *contactService) ListContacts(ctx context.Context, unreadOnly bool) ([]entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Contacts.GetAllContacts(ctx, unreadOnly)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list contact messages")
		return nil, err
	}

	return list, nil
}

// ReadContact returns the message and marks it read.
func (s *contactService) ReadContact(ctx context.Context, id int64) (entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Contact{}, err
	}
	defer repo.Rollback()

	contact, err := repo.Contacts.GetContactByID(ctx, id)
	if err != nil {
		return entity.Contact{}, err
	}

	if !contact.IsRead {
		if err := repo.Contacts.MarkContactRead(ctx, id); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"contact_id": id,
				"error":      err.Error(),
			}).Error("Failed to mark contact message read")
			return entity.Contact{}, err
		}
	}

	if err := repo.Commit(); err != nil {
		return entity.Contact{}, err
	}

	return contact, nil
}
