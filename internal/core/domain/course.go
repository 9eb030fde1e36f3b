package domain

import "time"

type Course struct {
	Price         int64
	OriginalPrice *int64
	StartDate     time.Time
	UpdatedAt     time.Time
}
