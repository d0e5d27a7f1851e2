package contactRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	contacts "PortfolioGolang/internal/api/contact"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ContactDB struct {
	ID        int64          `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Subject   sql.NullString `db:"subject"`
	Message   sql.NullString `db:"message"`
	IsRead    bool           `db:"is_read"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *contactsRepository) CreateContact(ctx context.Context, contact entity.Contact) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"name":       contact.Name,
		"email":      contact.Email,
		"subject":    contact.Subject,
		"message":    contact.Message,
		"is_read":    contact.IsRead,
		"created_at": contact.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateContact, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContact named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContact execution err")
		return 0, err
	}

	return id, nil
}

func (r *contactsRepository) GetAllContacts(ctx context.Context, unreadOnly bool) ([]entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ContactDB

	argsKV := map[string]interface{}{
		"unread_only": unreadOnly,
	}

	query, args, err := sqlx.Named(queryGetAllContacts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllContacts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllContacts execution err")
		return nil, err
	}

	out := make([]entity.Contact, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.makeContact(row))
	}

	return out, nil
}

func (r *contactsRepository) GetContactByID(ctx context.Context, id int64) (entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var contact ContactDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetContactByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContactByID named query preparation err")
		return entity.Contact{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&contact); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Contact{}, contacts.ErrContactNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContactByID execution err")
		return entity.Contact{}, err
	}

	return r.makeContact(contact), nil
}

func (r *contactsRepository) MarkContactRead(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryMarkContactRead, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkContactRead named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkContactRead execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return contacts.ErrContactNotFound
	}

	return nil
}

func (r *contactsRepository) makeContact(contact ContactDB) entity.Contact {
	return entity.Contact{
		ID:        contact.ID,
		Name:      contact.Name.String,
		Email:     contact.Email.String,
		Subject:   contact.Subject.String,
		Message:   contact.Message.String,
		IsRead:    contact.IsRead,
		CreatedAt: contact.CreatedAt,
	}
}
