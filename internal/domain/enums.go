package domain

import "fmt"

type VenueStatus string

const (
	VenueOpen   VenueStatus = "open"
	VenueClosed VenueStatus = "closed"
)

func ParseVenueStatus(s string) (VenueStatus, error) {
	st := VenueStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: venue status %q", ErrUnknownValue, s)
	}
	return st, nil
}

func (s VenueStatus) Valid() bool {
	switch s {
	case VenueOpen, VenueClosed:
		return true
	}
	return false
}

type AdStatus string

const (
	AdRunning AdStatus = "running"
	AdStopped AdStatus = "stopped"
)

func ParseAdStatus(s string) (AdStatus, error) {
	st := AdStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: ad status %q", ErrUnknownValue, s)
	}
	return st, nil
}

func (s AdStatus) Valid() bool {
	switch s {
	case AdRunning, AdStopped:
		return true
	}
	return false
}

// Toggled returns the status an ad switches to from s.
func (s AdStatus) Toggled() AdStatus {
	switch s {
	case AdRunning:
		return AdStopped
	case AdStopped:
		return AdRunning
	}
	return s
}

type NotificationType string

const (
	NotificationNewLocation   NotificationType = "new_location"
	NotificationHighActivity  NotificationType = "high_activity"
	NotificationNewUser       NotificationType = "new_user"
	NotificationAdPerformance NotificationType = "ad_performance"
	NotificationSystem        NotificationType = "system"
)

func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: notification type %q", ErrUnknownValue, s)
	}
	return t, nil
}

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationNewLocation,
		NotificationHighActivity,
		NotificationNewUser,
		NotificationAdPerformance,
		NotificationSystem:
		return true
	}
	return false
}

type VoteAction string

const (
	VotedOpen   VoteAction = "voted open"
	VotedClosed VoteAction = "voted closed"
)

func ParseVoteAction(s string) (VoteAction, error) {
	a := VoteAction(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: vote action %q", ErrUnknownValue, s)
	}
	return a, nil
}

func (a VoteAction) Valid() bool {
	switch a {
	case VotedOpen, VotedClosed:
		return true
	}
	return false
}
