package contract

import "github.com/selenkov/portfolio/internal/app"

type PortfolioReport = app.PortfolioReport

type LoadProfileResponse = app.LoadProfileResponse
