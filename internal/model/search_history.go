package model

import "time"

// SearchHistory is one recorded search by a caller or device.
type SearchHistory struct {
	ID         string
	UserID     int64
	DeviceID   string
	Term       string
	TotalCount int64
	CreatedAt  time.Time
}

// PopularSearch is one row of the rolling popular-search table.
type PopularSearch struct {
	Term           string
	SearchCount    int64
	LastSearchedAt time.Time
}
