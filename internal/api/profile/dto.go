package profiles

import (
	"io"

	"PortfolioGolang/internal/entity"
)

const (
	FeaturedServicesLimit     = 6
	FeaturedTestimonialsLimit = 6
)

type ServicesResponse struct {
	Featured []entity.Service
	Regular  []entity.Service
}

// Resume is an open resume stream. Body must be closed by the caller.
type Resume struct {
	Filename string
	Body     io.ReadCloser
	Size     int64
}
