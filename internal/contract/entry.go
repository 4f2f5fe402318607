package contract

import "github.com/selenkov/portfolio/internal/app"

type GradeInput = app.GradeInput

type SaveEntryRequest = app.SaveEntryRequest

type SaveEntryResponse = app.SaveEntryResponse

type GradeView = app.GradeView

type EntryDetail = app.EntryDetail
type ImportEntriesResponse = app.ImportEntriesResponse

type CreateGoalRequest = app.CreateGoalRequest
