package search

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
)

// Indexer is the subset of UserIndex the gateway needs.
type Indexer interface {
	Index(ctx context.Context, u *entity.User) error
	Remove(ctx context.Context, id string) error
}

// IndexingGateway keeps the search index in step with writes made through
// the wrapped gateway. Indexing failures are logged, never returned.
type IndexingGateway struct {
	gateway.UserGateway
	index  Indexer
	logger *logrus.Logger
}

func NewIndexingGateway(next gateway.UserGateway, index Indexer, logger *logrus.Logger) *IndexingGateway {
	return &IndexingGateway{UserGateway: next, index: index, logger: logger}
}

func (g *IndexingGateway) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	created, err := g.UserGateway.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	g.report(g.index.Index(ctx, created), "index", created.ID().String())
	return created, nil
}

func (g *IndexingGateway) Save(ctx context.Context, u *entity.User) error {
	if err := g.UserGateway.Save(ctx, u); err != nil {
		return err
	}
	g.report(g.index.Index(ctx, u), "index", u.ID().String())
	return nil
}

func (g *IndexingGateway) Delete(ctx context.Context, id string) error {
	if err := g.UserGateway.Delete(ctx, id); err != nil {
		return err
	}
	g.report(g.index.Remove(ctx, id), "remove", id)
	return nil
}

func (g *IndexingGateway) report(err error, action, id string) {
	if err == nil || g.logger == nil {
		return
	}
	g.logger.WithError(err).WithFields(logrus.Fields{"action": action, "user_id": id}).Warn("search index update failed")
}

var _ gateway.UserGateway = (*IndexingGateway)(nil)
