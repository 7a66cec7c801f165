package domain

// Ack is the result of a dashboard mutation. The service keeps no backend,
// so an accepted action is acknowledged with Persisted == false and the
// underlying collections stay as loaded.
type Ack struct {
	Action    string `json:"action"`
	Message   string `json:"message"`
	Persisted bool   `json:"persisted"`
}

func Accepted(action, message string) Ack {
	return Ack{Action: action, Message: message}
}
