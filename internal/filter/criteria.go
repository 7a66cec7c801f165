package filter

import (
	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

// VenueCriteria is the filter state of the venues screen. Empty strings and
// All disable the matching predicate.
type VenueCriteria struct {
	Query         string
	Status        string
	CategoryID    string
	SubcategoryID string
	Votes         VoteBand
}

// Predicates validates the criteria and turns them into predicates.
func (c VenueCriteria) Predicates() ([]Predicate[domain.Venue], error) {
	var status domain.VenueStatus
	if !isAll(c.Status) {
		st, err := domain.ParseVenueStatus(c.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	band, err := ParseVoteBand(string(c.Votes))
	if err != nil {
		return nil, err
	}

	return []Predicate[domain.Venue]{
		MatchText(c.Query, func(v domain.Venue) []string {
			return []string{v.Name, v.Location}
		}),
		Equal(status, !isAll(c.Status), func(v domain.Venue) domain.VenueStatus { return v.Status }),
		Equal(c.CategoryID, !isAll(c.CategoryID), func(v domain.Venue) string { return v.CategoryID }),
		Equal(c.SubcategoryID, !isAll(c.SubcategoryID), func(v domain.Venue) string { return v.SubcategoryID }),
		ByVotes(band),
	}, nil
}

func Venues(venues []domain.Venue, c VenueCriteria) ([]domain.Venue, error) {
	preds, err := c.Predicates()
	if err != nil {
		return nil, err
	}
	return Apply(venues, preds...), nil
}

type Activity string

const (
	ActivityAll      Activity = All
	ActivityActive   Activity = "active"
	ActivityInactive Activity = "inactive"
)

type UserCriteria struct {
	Query    string
	Activity string
}

func (c UserCriteria) Predicates() ([]Predicate[domain.User], error) {
	var active Predicate[domain.User]

	if !isAll(c.Activity) {
		switch a := Activity(c.Activity); a {
		case ActivityActive:
			active = func(u domain.User) bool { return u.Active }
		case ActivityInactive:
			active = func(u domain.User) bool { return !u.Active }
		case ActivityAll:
		default:
			return nil, unknown("activity", c.Activity)
		}
	}

	return []Predicate[domain.User]{
		MatchText(c.Query, func(u domain.User) []string {
			return []string{u.FullName, u.Username, u.Email}
		}),
		active,
	}, nil
}

func Users(users []domain.User, c UserCriteria) ([]domain.User, error) {
	preds, err := c.Predicates()
	if err != nil {
		return nil, err
	}
	return Apply(users, preds...), nil
}

type AdCriteria struct {
	Query  string
	Status string
}

func (c AdCriteria) Predicates() ([]Predicate[domain.Advertisement], error) {
	var status domain.AdStatus
	if !isAll(c.Status) {
		st, err := domain.ParseAdStatus(c.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	return []Predicate[domain.Advertisement]{
		MatchText(c.Query, func(a domain.Advertisement) []string {
			return []string{a.Title, a.Description, a.VenueName, a.TargetLocation}
		}),
		Equal(status, !isAll(c.Status), func(a domain.Advertisement) domain.AdStatus { return a.Status }),
	}, nil
}

func Ads(ads []domain.Advertisement, c AdCriteria) ([]domain.Advertisement, error) {
	preds, err := c.Predicates()
	if err != nil {
		return nil, err
	}
	return Apply(ads, preds...), nil
}

type ReadState string

const (
	ReadAll    ReadState = All
	ReadOnly   ReadState = "read"
	UnreadOnly ReadState = "unread"
)

type NotificationCriteria struct {
	Read string
}

func (c NotificationCriteria) Predicates() ([]Predicate[domain.Notification], error) {
	if isAll(c.Read) {
		return nil, nil
	}

	switch r := ReadState(c.Read); r {
	case ReadOnly:
		return []Predicate[domain.Notification]{
			func(n domain.Notification) bool { return n.Read },
		}, nil
	case UnreadOnly:
		return []Predicate[domain.Notification]{
			func(n domain.Notification) bool { return !n.Read },
		}, nil
	case ReadAll:
		return nil, nil
	}

	return nil, unknown("read state", c.Read)
}

func Notifications(ns []domain.Notification, c NotificationCriteria) ([]domain.Notification, error) {
	preds, err := c.Predicates()
	if err != nil {
		return nil, err
	}
	return Apply(ns, preds...), nil
}
