package ports

import (
	"context"

	"go.trai.ch/romdeps/internal/core/domain"
)

//go:generate mockgen -source=projector.go -destination=mocks/mock_projector.go -package=mocks

// Projector renders resolution results into the output directory.
type Projector interface {
	Project(ctx context.Context, p domain.Projection) error
}
