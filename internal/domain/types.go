package domain

import (
	"github.com/shopspring/decimal"
)

type Venue struct {
	ID              string      `json:"id" yaml:"id"`
	Name            string      `json:"name" yaml:"name"`
	Location        string      `json:"location" yaml:"location"`
	Lat             float64     `json:"lat" yaml:"lat"`
	Lng             float64     `json:"lng" yaml:"lng"`
	CategoryID      string      `json:"category" yaml:"category"`
	SubcategoryID   string      `json:"subcategory" yaml:"subcategory"`
	Status          VenueStatus `json:"status" yaml:"status"`
	TodayOpenVotes  int         `json:"today_open_votes" yaml:"today_open_votes"`
	TodayCloseVotes int         `json:"today_close_votes" yaml:"today_close_votes"`
	TotalVotes      int         `json:"total_votes" yaml:"total_votes"`
}

// TodayVotes is the sum the vote band filter works on.
func (v Venue) TodayVotes() int {
	return v.TodayOpenVotes + v.TodayCloseVotes
}

type User struct {
	ID                string `json:"id" yaml:"id"`
	FullName          string `json:"full_name" yaml:"full_name"`
	Username          string `json:"username" yaml:"username"`
	Email             string `json:"email" yaml:"email"`
	Active            bool   `json:"active" yaml:"active"`
	LastActiveMinutes int    `json:"last_active_minutes" yaml:"last_active_minutes"`
	TotalVotes        int    `json:"total_votes" yaml:"total_votes"`
	JoinedDate        string `json:"joined_date" yaml:"joined_date"`
}

// Advertisement targets either a linked venue or a free-text location.
// CTR comes with the source data and is never recomputed.
type Advertisement struct {
	ID             string          `json:"id" yaml:"id"`
	Title          string          `json:"title" yaml:"title"`
	Description    string          `json:"description" yaml:"description"`
	Image          string          `json:"image" yaml:"image"`
	VenueID        string          `json:"venue_id,omitempty" yaml:"venue_id"`
	VenueName      string          `json:"venue_name,omitempty" yaml:"venue_name"`
	TargetLocation string          `json:"target_location,omitempty" yaml:"target_location"`
	StartDate      string          `json:"start_date" yaml:"start_date"`
	EndDate        string          `json:"end_date" yaml:"end_date"`
	Status         AdStatus        `json:"status" yaml:"status"`
	Impressions    int64           `json:"impressions" yaml:"impressions"`
	Clicks         int64           `json:"clicks" yaml:"clicks"`
	CTR            decimal.Decimal `json:"ctr" yaml:"ctr" swaggertype:"string"`
}

type Subcategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Category struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
}

type Notification struct {
	ID        string           `json:"id" yaml:"id"`
	Type      NotificationType `json:"type" yaml:"type"`
	Title     string           `json:"title" yaml:"title"`
	Message   string           `json:"message" yaml:"message"`
	Timestamp string           `json:"timestamp" yaml:"timestamp"`
	Read      bool             `json:"read" yaml:"read"`
}

type RecentLocation struct {
	ID          string `json:"id" yaml:"id"`
	VenueName   string `json:"venue_name" yaml:"venue_name"`
	Location    string `json:"location" yaml:"location"`
	Subcategory string `json:"subcategory" yaml:"subcategory"`
	AddedBy     string `json:"added_by" yaml:"added_by"`
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
}

type RecentActivity struct {
	ID        string     `json:"id" yaml:"id"`
	UserName  string     `json:"user_name" yaml:"user_name"`
	Action    VoteAction `json:"action" yaml:"action"`
	VenueName string     `json:"venue_name" yaml:"venue_name"`
	Timestamp string     `json:"timestamp" yaml:"timestamp"`
}
