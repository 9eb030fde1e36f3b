package domain

import "time"

type User struct {
	ID           uint64
	Email        string
	Password     string
	Name         string
	Phone        string
	IsAdmin      bool
	IsEnrolled   bool
	EnrolledDate *time.Time
	CreatedAt    time.Time
}
