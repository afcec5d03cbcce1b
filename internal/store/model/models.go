package model

import "time"

// RecentFile is a mind-map document the user saved or opened.
type RecentFile struct {
	ID       string    `db:"id" json:"id"`
	Path     string    `db:"path" json:"path"`
	Title    string    `db:"title" json:"title"`
	OpenedAt time.Time `db:"opened_at" json:"opened_at"`
}
