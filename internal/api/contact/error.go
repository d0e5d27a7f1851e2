package contacts

import "PortfolioGolang/pkg/response"

var (
	ErrContactNotFound = response.NewError(404, "contact message not found")
)
