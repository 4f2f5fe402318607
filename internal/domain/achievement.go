package domain

import "time"

// Achievement is a catalog badge. Position fixes its display order.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Position    int
}

// UnlockedAchievement records that a user earned an achievement.
// At most one exists per (UserID, AchievementID).
type UnlockedAchievement struct {
	UserID        int64
	AchievementID string
	UnlockedAt    time.Time
}

// AchievementStatus pairs a catalog achievement with its unlock time, nil when
// the achievement has not been earned yet.
type AchievementStatus struct {
	Achievement Achievement
	UnlockedAt  *time.Time
}

func (s AchievementStatus) Unlocked() bool {
	return s.UnlockedAt != nil
}
