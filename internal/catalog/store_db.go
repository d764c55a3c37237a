package catalog

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) ListSortedByID(ctx context.Context) ([]Artwork, error) {
	var out []Artwork

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, title, artist, category, price, description, location, likes, views, image
			FROM artworks
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Artwork, 0, 32)
		for rows.Next() {
			var a Artwork
			if err := rows.Scan(&a.ID, &a.Title, &a.Artist, &a.Category, &a.Price,
				&a.Description, &a.Location, &a.Likes, &a.Views, &a.Image); err != nil {
				return err
			}
			out = append(out, a)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id int) (Artwork, bool, error) {
	var a Artwork

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, title, artist, category, price, description, location, likes, views, image
			FROM artworks
			WHERE id = $1
		`, id).Scan(&a.ID, &a.Title, &a.Artist, &a.Category, &a.Price,
			&a.Description, &a.Location, &a.Likes, &a.Views, &a.Image)
	})

	if err == sql.ErrNoRows {
		return Artwork{}, false, nil
	}
	if err != nil {
		return Artwork{}, false, err
	}
	return a, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
