package profiles

import "PortfolioGolang/pkg/response"

var (
	ErrResumeNotFound = response.NewError(404, "resume not found")
)
