package model

import (
	"encoding/json"
	"time"
)

// Subscriber is a newsletter sign-up. Subscribers are append-only.
type Subscriber struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type subscriberJSON Subscriber

// MarshalJSON writes SubscribedAt with millisecond precision.
func (s Subscriber) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		subscriberJSON
		SubscribedAt string `json:"subscribedAt"`
	}{
		subscriberJSON: subscriberJSON(s),
		SubscribedAt:   FormatTimestamp(s.SubscribedAt),
	})
}
