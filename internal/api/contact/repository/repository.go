package contactRepository

import (
	"context"

	"PortfolioGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Contacts: &contactsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Contacts interface {
	CreateContact(ctx context.Context, contact entity.Contact) (int64, error)
	GetAllContacts(ctx context.Context, unreadOnly bool) ([]entity.Contact, error)
	GetContactByID(ctx context.Context, id int64) (entity.Contact, error)
	MarkContactRead(ctx context.Context, id int64) error
}

type Client struct {
	Contacts Contacts

	Commit   func() error
	Rollback func() error
}

type contactsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
