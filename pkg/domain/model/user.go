package model

import "time"

// User is the single-profile record of the deployment. The service is a
// single-user MVP; the profile is auto-created on first access.
type User struct {
	ID                      int64     `json:"id"`
	FullName                string    `json:"full_name"`
	Email                   string    `json:"email"`
	MorningBriefingTime     string    `json:"morning_briefing_time"` // "HH:MM", local time of the deployment
	GoogleCalendarConnected bool      `json:"google_calendar_connected"`
	NotionConnected         bool      `json:"notion_connected"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DefaultUser returns the profile created when none exists yet
func DefaultUser() *User {
	return &User{
		FullName:            "BrainDump User",
		Email:               "user@braindump.app",
		MorningBriefingTime: "09:00",
	}
}
