package tag

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to the global tag
// registry.
//
//go:generate mockgen --destination=tag.mock.go --package=tag . Repository
type Repository interface {
	CreateTagIfItDoesNotExist(ctx context.Context, tag string) error
	AllTags(ctx context.Context) ([]*mmodel.Tag, error)
	CountTags(ctx context.Context) (uint64, error)
}
