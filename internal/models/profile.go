// ABOUTME: UserProfile model, one singleton per installation.
// ABOUTME: Level and Streak are derived fields, only written by recomputes.
package models

import "time"

// UserProfile holds the user's identity and progression totals.
// TotalXP only increases (outside explicit resets); Level is always
// floor(TotalXP/1000)+1 and Streak is owned by the streak engine.
type UserProfile struct {
	Name             string     `json:"name"`
	AvatarURI        string     `json:"avatar_uri,omitempty"`
	AccentColor      string     `json:"accent_color,omitempty"`
	TotalXP          int        `json:"total_xp"`
	Level            int        `json:"level"`
	Streak           int        `json:"streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

// DefaultProfile returns the factory-fresh profile.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:  "Usuário",
		Level: 1,
	}
}

// Clone returns a copy of the profile.
func (u UserProfile) Clone() UserProfile {
	out := u
	if u.LastActivityDate != nil {
		d := *u.LastActivityDate
		out.LastActivityDate = &d
	}
	return out
}
