package contract

import "github.com/selenkov/portfolio/internal/app"

type UnlockEvent = app.UnlockEvent

type AchievementView = app.AchievementView

type GoalProgressView = app.GoalProgressView

type CompetencyLevelView = app.CompetencyLevelView

type CompetencyReport = app.CompetencyReport

type FrequencyView = app.FrequencyView

type ResearchMap = app.ResearchMap
