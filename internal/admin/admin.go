package admin

import (
	"io"

	blogService "PortfolioGolang/internal/api/blog/service"
	contactService "PortfolioGolang/internal/api/contact/service"
	"PortfolioGolang/pkg/media"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Admin runs operator commands against the store. Output meant for the operator
// goes to out; diagnostics go to log.
type Admin struct {
	db             *sqlx.DB
	log            *logrus.Logger
	out            io.Writer
	blogService    blogService.IBlogService
	contactService contactService.IContactService
	media          media.Storage
}

func New(
	db *sqlx.DB,
	log *logrus.Logger,
	out io.Writer,
	bs blogService.IBlogService,
	cs contactService.IContactService,
	storage media.Storage,
) *Admin {
	return &Admin{
		db:             db,
		log:            log,
		out:            out,
		blogService:    bs,
		contactService: cs,
		media:          storage,
	}
}
