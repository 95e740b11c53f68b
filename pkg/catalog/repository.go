package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// RepositoryImpl reads the catalog tables created by the migrations.
type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Sidebar(ctx context.Context) ([]SidebarLink, error) {
	query := `SELECT id, label FROM sidebar_link ORDER BY position, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query sidebar links: %w", err)
		log.Error(err)
		return nil, err
	}

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SidebarLink, error) {
		var link SidebarLink
		err := row.Scan(&link.Id, &link.Label)
		return link, err
	})
	if err != nil {
		return nil, fmt.Errorf("could not read sidebar links: %w", err)
	}
	return links, nil
}

func (r RepositoryImpl) Content(ctx context.Context) ([]ContentItem, error) {
	query := `SELECT id, title, category, image, summary FROM content_item ORDER BY position, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query content items: %w", err)
		log.Error(err)
		return nil, err
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ContentItem, error) {
		var item ContentItem
		err := row.Scan(&item.Id, &item.Title, &item.Category, &item.Image, &item.Summary)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("could not read content items: %w", err)
	}
	return items, nil
}
