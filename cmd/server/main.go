// AQI Dashboard
// A login-gated web dashboard embedding the Air Quality Insights Power BI
// report. Credentials live in a local SQLite file; sessions travel in an
// encrypted cookie.

package main

import (
	"go.uber.org/fx"

	"github.com/Dhayanand17/AQI/internal/components/screens"
	"github.com/Dhayanand17/AQI/internal/components/users"
	"github.com/Dhayanand17/AQI/internal/server"
	"github.com/Dhayanand17/AQI/internal/session"
	"github.com/Dhayanand17/AQI/internal/shared/config"
	"github.com/Dhayanand17/AQI/internal/shared/database"
	"github.com/Dhayanand17/AQI/internal/shared/logging"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewDB,
			session.NewManager,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			users.NewRepo,
			users.NewService,
			fx.Annotate(screens.NewRouter, fx.ResultTags(`name:"screensRouter"`)),
		),
		fx.Invoke((*server.Server).Start),
	).Run()
}
