package domain

import "time"

const ViewEventType = "item_viewed"

type ViewEvent struct {
	Type      string    `json:"type"`
	Slug      string    `json:"slug"`
	ItemID    int       `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}
