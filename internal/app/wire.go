//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/eslsoft/luci/api/luci/v1/luciv1connect"
	"github.com/eslsoft/luci/internal/adapter/connectrpc"
	"github.com/eslsoft/luci/internal/adapter/repository"
	"github.com/eslsoft/luci/internal/infrastructure/config"
	"github.com/eslsoft/luci/internal/infrastructure/database"
	"github.com/eslsoft/luci/internal/infrastructure/ledger"
	"github.com/eslsoft/luci/internal/infrastructure/server"
	repo "github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
	server.NewLogger,
)

var databaseSet = wire.NewSet(
	database.NewClient,
	provideStore,
	wire.Bind(new(repo.TxManager), new(*repository.Store)),
)

var repositorySet = wire.NewSet(
	repository.NewEmotionRepository,
	repository.NewUserRepository,
	repository.NewMessageRepository,
	repository.NewQuoteRepository,
	repository.NewCustomConfigRepository,
	repository.NewWordRepository,
)

var ledgerSet = wire.NewSet(
	ledger.New,
	provideNotifier,
)

var usecaseSet = wire.NewSet(
	usecase.NewEmotionUsecase,
	usecase.NewUserUsecase,
	usecase.NewMessageUsecase,
	usecase.NewQuoteUsecase,
	usecase.NewCustomConfigUsecase,
	usecase.NewWordUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewEmotionServiceServer,
	connectrpc.NewUserServiceServer,
	connectrpc.NewMessageServiceServer,
	connectrpc.NewQuoteServiceServer,
	connectrpc.NewConfigServiceServer,
	connectrpc.NewWordServiceServer,
	wire.Bind(new(luciv1connect.EmotionServiceHandler), new(*connectrpc.EmotionServiceServer)),
	wire.Bind(new(luciv1connect.UserServiceHandler), new(*connectrpc.UserServiceServer)),
	wire.Bind(new(luciv1connect.MessageServiceHandler), new(*connectrpc.MessageServiceServer)),
	wire.Bind(new(luciv1connect.QuoteServiceHandler), new(*connectrpc.QuoteServiceServer)),
	wire.Bind(new(luciv1connect.ConfigServiceHandler), new(*connectrpc.ConfigServiceServer)),
	wire.Bind(new(luciv1connect.WordServiceHandler), new(*connectrpc.WordServiceServer)),
	wire.Struct(new(server.Services), "*"),
)

var serverSet = wire.NewSet(
	server.NewServer,
	wire.Bind(new(server.Pinger), new(*database.Client)),
)

// Initialize builds the application container using Wire.
func Initialize(ctx context.Context) (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		ledgerSet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}

// InitializeTools builds the dependencies of the maintenance commands.
func InitializeTools() (*Tools, func(), error) {
	wire.Build(
		configSet,
		database.NewClient,
		provideExtractor,
		wire.Struct(new(Tools), "*"),
	)
	return nil, nil, nil
}
