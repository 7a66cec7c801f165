package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

// FixtureRepo reads the fixture tables. Every list keeps the seed order.
type FixtureRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *FixtureRepo) With(db DB) *FixtureRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *FixtureRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// list runs query and scans every row with scan.
func list[T any](ctx context.Context, db DB, op, query string, scan func(pgx.Rows, *T) error) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return out, nil
}

// ListCategories returns categories with their subcategories, both in seed
// order.
func (r *FixtureRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "postgres.FixtureRepo.ListCategories"

	db := r.handle()

	cats, err := list(ctx, db, op,
		`SELECT id, name FROM categories ORDER BY ord`,
		func(rows pgx.Rows, c *domain.Category) error {
			return rows.Scan(&c.ID, &c.Name)
		},
	)
	if err != nil {
		return nil, err
	}

	type subRow struct {
		categoryID string
		sub        domain.Subcategory
	}

	subs, err := list(ctx, db, op,
		`SELECT category_id, id, name FROM subcategories ORDER BY category_id, ord`,
		func(rows pgx.Rows, s *subRow) error {
			return rows.Scan(&s.categoryID, &s.sub.ID, &s.sub.Name)
		},
	)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(cats))
	for i, c := range cats {
		idx[c.ID] = i
	}
	for _, s := range subs {
		if i, ok := idx[s.categoryID]; ok {
			cats[i].Subcategories = append(cats[i].Subcategories, s.sub)
		}
	}

	return cats, nil
}

func (r *FixtureRepo) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	const op = "postgres.FixtureRepo.ListVenues"

	return list(ctx, r.handle(), op,
		`SELECT id, name, location, lat, lng, category_id, subcategory_id, status,
		        today_open_votes, today_close_votes, total_votes
		 FROM venues
		 ORDER BY ord`,
		func(rows pgx.Rows, v *domain.Venue) error {
			return rows.Scan(&v.ID, &v.Name, &v.Location, &v.Lat, &v.Lng,
				&v.CategoryID, &v.SubcategoryID, &v.Status,
				&v.TodayOpenVotes, &v.TodayCloseVotes, &v.TotalVotes)
		},
	)
}

func (r *FixtureRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	const op = "postgres.FixtureRepo.ListUsers"

	return list(ctx, r.handle(), op,
		`SELECT id, full_name, username, email, active, last_active_minutes,
		        total_votes, to_char(joined_date, 'YYYY-MM-DD')
		 FROM users
		 ORDER BY ord`,
		func(rows pgx.Rows, u *domain.User) error {
			return rows.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Active,
				&u.LastActiveMinutes, &u.TotalVotes, &u.JoinedDate)
		},
	)
}

func (r *FixtureRepo) ListAds(ctx context.Context) ([]domain.Advertisement, error) {
	const op = "postgres.FixtureRepo.ListAds"

	return list(ctx, r.handle(), op,
		`SELECT id, title, description, image,
		        COALESCE(venue_id, ''), COALESCE(venue_name, ''), COALESCE(target_location, ''),
		        to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		        status, impressions, clicks, ctr::text
		 FROM ads
		 ORDER BY ord`,
		func(rows pgx.Rows, a *domain.Advertisement) error {
			var ctr string
			if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Image,
				&a.VenueID, &a.VenueName, &a.TargetLocation,
				&a.StartDate, &a.EndDate,
				&a.Status, &a.Impressions, &a.Clicks, &ctr); err != nil {
				return err
			}

			d, err := decimal.NewFromString(ctr)
			if err != nil {
				return fmt.Errorf("ad %s ctr: %w", a.ID, err)
			}
			a.CTR = d

			return nil
		},
	)
}

func (r *FixtureRepo) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	const op = "postgres.FixtureRepo.ListNotifications"

	return list(ctx, r.handle(), op,
		`SELECT id, type, title, message, timestamp, read
		 FROM notifications
		 ORDER BY ord`,
		func(rows pgx.Rows, n *domain.Notification) error {
			return rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Timestamp, &n.Read)
		},
	)
}

func (r *FixtureRepo) ListRecentLocations(ctx context.Context) ([]domain.RecentLocation, error) {
	const op = "postgres.FixtureRepo.ListRecentLocations"

	return list(ctx, r.handle(), op,
		`SELECT id, venue_name, location, subcategory, added_by, timestamp
		 FROM recent_locations
		 ORDER BY ord`,
		func(rows pgx.Rows, l *domain.RecentLocation) error {
			return rows.Scan(&l.ID, &l.VenueName, &l.Location, &l.Subcategory, &l.AddedBy, &l.Timestamp)
		},
	)
}

func (r *FixtureRepo) ListRecentActivities(ctx context.Context) ([]domain.RecentActivity, error) {
	const op = "postgres.FixtureRepo.ListRecentActivities"

	return list(ctx, r.handle(), op,
		`SELECT id, user_name, action, venue_name, timestamp
		 FROM recent_activities
		 ORDER BY ord`,
		func(rows pgx.Rows, a *domain.RecentActivity) error {
			return rows.Scan(&a.ID, &a.UserName, &a.Action, &a.VenueName, &a.Timestamp)
		},
	)
}
