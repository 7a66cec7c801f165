package filter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

// VenueRow is a venue with the values the list screens display next to it.
type VenueRow struct {
	domain.Venue
	CategoryName    string `json:"category_name"`
	SubcategoryName string `json:"subcategory_name"`
	TodayVotes      int    `json:"today_votes"`
	OpenPercent     int    `json:"open_percent"`
	ClosePercent    int    `json:"close_percent"`
}

func DeriveVenue(v domain.Venue, cats Categories) VenueRow {
	openPct, closePct := VotePercentage(v.TodayOpenVotes, v.TodayCloseVotes)

	return VenueRow{
		Venue:           v,
		CategoryName:    cats.Name(v.CategoryID),
		SubcategoryName: cats.SubcategoryName(v.CategoryID, v.SubcategoryID),
		TodayVotes:      v.TodayVotes(),
		OpenPercent:     openPct,
		ClosePercent:    closePct,
	}
}

func DeriveVenues(venues []domain.Venue, cats Categories) []VenueRow {
	out := make([]VenueRow, 0, len(venues))
	for _, v := range venues {
		out = append(out, DeriveVenue(v, cats))
	}
	return out
}

// Stats are the dashboard counters.
type Stats struct {
	TotalVenues         int             `json:"total_venues"`
	TotalCategories     int             `json:"total_categories"`
	TotalUsers          int             `json:"total_users"`
	ActiveUsers         int             `json:"active_users"`
	TotalVotes          int             `json:"total_votes"`
	AverageVotesPerUser decimal.Decimal `json:"average_votes_per_user" swaggertype:"string"`
	UnreadNotifications int             `json:"unread_notifications"`
}

func DeriveStats(
	venues []domain.Venue,
	cats Categories,
	users []domain.User,
	notifications []domain.Notification,
) Stats {
	st := Stats{
		TotalVenues:     len(venues),
		TotalCategories: len(cats),
		TotalUsers:      len(users),
	}

	for _, u := range users {
		if u.Active {
			st.ActiveUsers++
		}
		st.TotalVotes += u.TotalVotes
	}

	st.AverageVotesPerUser = decimal.Zero
	if st.TotalUsers > 0 {
		st.AverageVotesPerUser = decimal.NewFromInt(int64(st.TotalVotes)).
			Div(decimal.NewFromInt(int64(st.TotalUsers))).
			Round(1)
	}

	for _, n := range notifications {
		if !n.Read {
			st.UnreadNotifications++
		}
	}

	return st
}

func unknown(what, value string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrUnknownValue, what, value)
}
