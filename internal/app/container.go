package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/luci/internal/adapter/repository"
	"github.com/eslsoft/luci/internal/infrastructure/config"
	"github.com/eslsoft/luci/internal/infrastructure/database"
	"github.com/eslsoft/luci/internal/infrastructure/ledger"
	"github.com/eslsoft/luci/internal/infrastructure/server"
	"github.com/eslsoft/luci/internal/usecase"
	"github.com/eslsoft/luci/internal/usecase/vocabulary"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	DB     *database.Client
	Server *server.Server
	Ledger ledger.Service
}

// Tools holds what the maintenance commands need: no HTTP server, no ledger.
type Tools struct {
	Config    *config.Config
	Logger    *logrus.Logger
	DB        *database.Client
	Extractor *vocabulary.Extractor
}

func provideStore(client *database.Client) *repository.Store {
	return repository.NewStore(client.Driver)
}

// provideNotifier exposes the ledger service to the user usecase, which only
// needs the notification side.
func provideNotifier(svc ledger.Service) usecase.MessageNotifier {
	return svc
}

func provideExtractor(c *database.Client, logger *logrus.Logger) *vocabulary.Extractor {
	store := provideStore(c)
	return vocabulary.NewExtractor(
		repository.NewWordRepository(store),
		logger,
		repository.NewMessageRepository(store),
		repository.NewQuoteRepository(store),
	)
}
