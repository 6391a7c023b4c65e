package ports

import "github.com/aalvaropc/consumo/internal/domain"

// ExportStore persists exported series as downloadable files.
type ExportStore interface {
	SaveExport(a domain.ExportArtifact) (id string, err error)
}
