package ports

import (
	"io"

	"github.com/aalvaropc/consumo/internal/domain"
)

// SeriesEncoder serializes a series (e.g., to CSV).
type SeriesEncoder interface {
	Encode(w io.Writer, s domain.Series) error
}
