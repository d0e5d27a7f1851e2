package projects

import "PortfolioGolang/pkg/response"

var (
	ErrProjectNotFound  = response.NewError(404, "project not found")
	ErrTemplateNotFound = response.NewError(404, "project template not found")
)
