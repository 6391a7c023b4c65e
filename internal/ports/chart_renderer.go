package ports

import "github.com/aalvaropc/consumo/internal/domain"

// ChartRenderer draws (YD, C) points inside fixed axis bounds.
type ChartRenderer interface {
	Render(points []domain.Point, axes domain.AxisBounds) (string, error)
}
