package blogs

import "PortfolioGolang/pkg/response"

var (
	ErrPostNotFound    = response.NewError(404, "blog post not found")
	ErrInvalidPostData = response.NewError(400, "invalid blog post data")
)
