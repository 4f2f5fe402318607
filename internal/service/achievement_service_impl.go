package service

import (
	"context"

	"github.com/selenkov/portfolio/internal/achievement"
	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/repository"
)

type achievementService struct {
	achievements repository.AchievementRepo
	userID       int64
}

func NewAchievementService(achievements repository.AchievementRepo, userID int64) AchievementService {
	return &achievementService{achievements: achievements, userID: userID}
}

// EnsureCatalog seeds the fixed achievement catalog. Safe to call on every start.
func (s *achievementService) EnsureCatalog(ctx context.Context) error {
	return s.achievements.Seed(ctx, achievement.Catalog())
}

// Overview lists every catalog achievement with the user's unlock time.
func (s *achievementService) Overview(ctx context.Context) ([]app.AchievementView, error) {
	statuses, err := s.achievements.ListStatus(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	out := make([]app.AchievementView, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, app.AchievementView{
			Name:        st.Achievement.Name,
			Description: st.Achievement.Description,
			UnlockedAt:  st.UnlockedAt,
		})
	}
	return out, nil
}
