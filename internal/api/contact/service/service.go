package contactService

import (
	"context"

	contacts "PortfolioGolang/internal/api/contact"
	contactRepository "PortfolioGolang/internal/api/contact/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/smtp"

	"github.com/sirupsen/logrus"
)

type IContactService interface {
	SubmitContact(ctx context.Context, req contacts.ContactRequest) (entity.Contact, error)
	ListContacts(ctx context.Context, unreadOnly bool) ([]entity.Contact, error)
	ReadContact(ctx context.Context, id int64) (entity.Contact, error)
}

type contactService struct {
	log         *logrus.Logger
	contactRepo contactRepository.Repository
	smtpMailer  smtp.ItfSmtp
}

// NewContactService accepts a nil mailer; notifications are then skipped.
func NewContactService(
	log *logrus.Logger,
	contactRepo contactRepository.Repository,
	smtpMailer smtp.ItfSmtp,
) IContactService {
	return &contactService{
		log:         log,
		contactRepo: contactRepo,
		smtpMailer:  smtpMailer,
	}
}
