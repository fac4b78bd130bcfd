// Package luciv1connect wires the luci.v1 services to connect handlers and
// clients.
package luciv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
)

// These constants are the fully-qualified names of the luci.v1 services.
const (
	EmotionServiceName = "luci.v1.EmotionService"
	UserServiceName    = "luci.v1.UserService"
	MessageServiceName = "luci.v1.MessageService"
	QuoteServiceName   = "luci.v1.QuoteService"
	ConfigServiceName  = "luci.v1.ConfigService"
	WordServiceName    = "luci.v1.WordService"
)

// These constants are the fully-qualified names of the RPCs, in the form
// /package.Service/Method. They match r.URL.Path on incoming requests.
const (
	EmotionServiceListEmotionsProcedure      = "/luci.v1.EmotionService/ListEmotions"
	EmotionServiceUpdateEmotionProcedure     = "/luci.v1.EmotionService/UpdateEmotion"
	UserServiceListUsersProcedure            = "/luci.v1.UserService/ListUsers"
	UserServiceUpdateUserProcedure           = "/luci.v1.UserService/UpdateUser"
	MessageServiceListMessagesProcedure      = "/luci.v1.MessageService/ListMessages"
	MessageServiceAssignResponseProcedure    = "/luci.v1.MessageService/AssignResponse"
	MessageServiceLinkResponseProcedure      = "/luci.v1.MessageService/LinkResponse"
	QuoteServiceListQuotesProcedure          = "/luci.v1.QuoteService/ListQuotes"
	QuoteServiceCreateQuoteProcedure         = "/luci.v1.QuoteService/CreateQuote"
	ConfigServiceGetCustomConfigProcedure    = "/luci.v1.ConfigService/GetCustomConfig"
	ConfigServiceUpdateCustomConfigProcedure = "/luci.v1.ConfigService/UpdateCustomConfig"
	WordServiceListWordsProcedure            = "/luci.v1.WordService/ListWords"
	WordServiceUpdateWordProcedure           = "/luci.v1.WordService/UpdateWord"
	WordServiceAddMeaningProcedure           = "/luci.v1.WordService/AddMeaning"
)

// ServiceNames lists the fully-qualified names of every luci.v1 service.
var ServiceNames = []string{
	EmotionServiceName,
	UserServiceName,
	MessageServiceName,
	QuoteServiceName,
	ConfigServiceName,
	WordServiceName,
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(luciv1.Codec{})}, opts...)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(luciv1.Codec{})}, opts...)
}

// EmotionServiceClient is a client for the luci.v1.EmotionService service.
type EmotionServiceClient interface {
	ListEmotions(context.Context, *connect.Request[luciv1.ListEmotionsRequest]) (*connect.Response[luciv1.ListEmotionsResponse], error)
	UpdateEmotion(context.Context, *connect.Request[luciv1.UpdateEmotionRequest]) (*connect.Response[luciv1.Emotion], error)
}

// NewEmotionServiceClient constructs a client for the luci.v1.EmotionService service. The
// baseURL must not include the service path.
func NewEmotionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EmotionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &emotionServiceClient{
		listEmotions: connect.NewClient[luciv1.ListEmotionsRequest, luciv1.ListEmotionsResponse](
			httpClient,
			baseURL+EmotionServiceListEmotionsProcedure,
			opts...,
		),
		updateEmotion: connect.NewClient[luciv1.UpdateEmotionRequest, luciv1.Emotion](
			httpClient,
			baseURL+EmotionServiceUpdateEmotionProcedure,
			opts...,
		),
	}
}

type emotionServiceClient struct {
	listEmotions  *connect.Client[luciv1.ListEmotionsRequest, luciv1.ListEmotionsResponse]
	updateEmotion *connect.Client[luciv1.UpdateEmotionRequest, luciv1.Emotion]
}

func (c *emotionServiceClient) ListEmotions(ctx context.Context, req *connect.Request[luciv1.ListEmotionsRequest]) (*connect.Response[luciv1.ListEmotionsResponse], error) {
	return c.listEmotions.CallUnary(ctx, req)
}

func (c *emotionServiceClient) UpdateEmotion(ctx context.Context, req *connect.Request[luciv1.UpdateEmotionRequest]) (*connect.Response[luciv1.Emotion], error) {
	return c.updateEmotion.CallUnary(ctx, req)
}

// EmotionServiceHandler is an implementation of the luci.v1.EmotionService service.
type EmotionServiceHandler interface {
	ListEmotions(context.Context, *connect.Request[luciv1.ListEmotionsRequest]) (*connect.Response[luciv1.ListEmotionsResponse], error)
	UpdateEmotion(context.Context, *connect.Request[luciv1.UpdateEmotionRequest]) (*connect.Response[luciv1.Emotion], error)
}

// NewEmotionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewEmotionServiceHandler(svc EmotionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listEmotionsHandler := connect.NewUnaryHandler(
		EmotionServiceListEmotionsProcedure,
		svc.ListEmotions,
		opts...,
	)
	updateEmotionHandler := connect.NewUnaryHandler(
		EmotionServiceUpdateEmotionProcedure,
		svc.UpdateEmotion,
		opts...,
	)
	return "/luci.v1.EmotionService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case EmotionServiceListEmotionsProcedure:
			listEmotionsHandler.ServeHTTP(w, r)
		case EmotionServiceUpdateEmotionProcedure:
			updateEmotionHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedEmotionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedEmotionServiceHandler struct{}

func (UnimplementedEmotionServiceHandler) ListEmotions(context.Context, *connect.Request[luciv1.ListEmotionsRequest]) (*connect.Response[luciv1.ListEmotionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.EmotionService.ListEmotions is not implemented"))
}

func (UnimplementedEmotionServiceHandler) UpdateEmotion(context.Context, *connect.Request[luciv1.UpdateEmotionRequest]) (*connect.Response[luciv1.Emotion], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.EmotionService.UpdateEmotion is not implemented"))
}

// UserServiceClient is a client for the luci.v1.UserService service.
type UserServiceClient interface {
	ListUsers(context.Context, *connect.Request[luciv1.ListUsersRequest]) (*connect.Response[luciv1.ListUsersResponse], error)
	UpdateUser(context.Context, *connect.Request[luciv1.UpdateUserRequest]) (*connect.Response[luciv1.User], error)
}

// NewUserServiceClient constructs a client for the luci.v1.UserService service. The
// baseURL must not include the service path.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &userServiceClient{
		listUsers: connect.NewClient[luciv1.ListUsersRequest, luciv1.ListUsersResponse](
			httpClient,
			baseURL+UserServiceListUsersProcedure,
			opts...,
		),
		updateUser: connect.NewClient[luciv1.UpdateUserRequest, luciv1.User](
			httpClient,
			baseURL+UserServiceUpdateUserProcedure,
			opts...,
		),
	}
}

type userServiceClient struct {
	listUsers  *connect.Client[luciv1.ListUsersRequest, luciv1.ListUsersResponse]
	updateUser *connect.Client[luciv1.UpdateUserRequest, luciv1.User]
}

func (c *userServiceClient) ListUsers(ctx context.Context, req *connect.Request[luciv1.ListUsersRequest]) (*connect.Response[luciv1.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *userServiceClient) UpdateUser(ctx context.Context, req *connect.Request[luciv1.UpdateUserRequest]) (*connect.Response[luciv1.User], error) {
	return c.updateUser.CallUnary(ctx, req)
}

// UserServiceHandler is an implementation of the luci.v1.UserService service.
type UserServiceHandler interface {
	ListUsers(context.Context, *connect.Request[luciv1.ListUsersRequest]) (*connect.Response[luciv1.ListUsersResponse], error)
	UpdateUser(context.Context, *connect.Request[luciv1.UpdateUserRequest]) (*connect.Response[luciv1.User], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listUsersHandler := connect.NewUnaryHandler(
		UserServiceListUsersProcedure,
		svc.ListUsers,
		opts...,
	)
	updateUserHandler := connect.NewUnaryHandler(
		UserServiceUpdateUserProcedure,
		svc.UpdateUser,
		opts...,
	)
	return "/luci.v1.UserService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceListUsersProcedure:
			listUsersHandler.ServeHTTP(w, r)
		case UserServiceUpdateUserProcedure:
			updateUserHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) ListUsers(context.Context, *connect.Request[luciv1.ListUsersRequest]) (*connect.Response[luciv1.ListUsersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.UserService.ListUsers is not implemented"))
}

func (UnimplementedUserServiceHandler) UpdateUser(context.Context, *connect.Request[luciv1.UpdateUserRequest]) (*connect.Response[luciv1.User], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.UserService.UpdateUser is not implemented"))
}

// MessageServiceClient is a client for the luci.v1.MessageService service.
type MessageServiceClient interface {
	ListMessages(context.Context, *connect.Request[luciv1.ListMessagesRequest]) (*connect.Response[luciv1.ListMessagesResponse], error)
	AssignResponse(context.Context, *connect.Request[luciv1.AssignResponseRequest]) (*connect.Response[luciv1.AssignResponseResponse], error)
	LinkResponse(context.Context, *connect.Request[luciv1.LinkResponseRequest]) (*connect.Response[luciv1.LinkResponseResponse], error)
}

// NewMessageServiceClient constructs a client for the luci.v1.MessageService service. The
// baseURL must not include the service path.
func NewMessageServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MessageServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &messageServiceClient{
		listMessages: connect.NewClient[luciv1.ListMessagesRequest, luciv1.ListMessagesResponse](
			httpClient,
			baseURL+MessageServiceListMessagesProcedure,
			opts...,
		),
		assignResponse: connect.NewClient[luciv1.AssignResponseRequest, luciv1.AssignResponseResponse](
			httpClient,
			baseURL+MessageServiceAssignResponseProcedure,
			opts...,
		),
		linkResponse: connect.NewClient[luciv1.LinkResponseRequest, luciv1.LinkResponseResponse](
			httpClient,
			baseURL+MessageServiceLinkResponseProcedure,
			opts...,
		),
	}
}

type messageServiceClient struct {
	listMessages   *connect.Client[luciv1.ListMessagesRequest, luciv1.ListMessagesResponse]
	assignResponse *connect.Client[luciv1.AssignResponseRequest, luciv1.AssignResponseResponse]
	linkResponse   *connect.Client[luciv1.LinkResponseRequest, luciv1.LinkResponseResponse]
}

func (c *messageServiceClient) ListMessages(ctx context.Context, req *connect.Request[luciv1.ListMessagesRequest]) (*connect.Response[luciv1.ListMessagesResponse], error) {
	return c.listMessages.CallUnary(ctx, req)
}

func (c *messageServiceClient) AssignResponse(ctx context.Context, req *connect.Request[luciv1.AssignResponseRequest]) (*connect.Response[luciv1.AssignResponseResponse], error) {
	return c.assignResponse.CallUnary(ctx, req)
}

func (c *messageServiceClient) LinkResponse(ctx context.Context, req *connect.Request[luciv1.LinkResponseRequest]) (*connect.Response[luciv1.LinkResponseResponse], error) {
	return c.linkResponse.CallUnary(ctx, req)
}

// MessageServiceHandler is an implementation of the luci.v1.MessageService service.
type MessageServiceHandler interface {
	ListMessages(context.Context, *connect.Request[luciv1.ListMessagesRequest]) (*connect.Response[luciv1.ListMessagesResponse], error)
	AssignResponse(context.Context, *connect.Request[luciv1.AssignResponseRequest]) (*connect.Response[luciv1.AssignResponseResponse], error)
	LinkResponse(context.Context, *connect.Request[luciv1.LinkResponseRequest]) (*connect.Response[luciv1.LinkResponseResponse], error)
}

// NewMessageServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMessageServiceHandler(svc MessageServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listMessagesHandler := connect.NewUnaryHandler(
		MessageServiceListMessagesProcedure,
		svc.ListMessages,
		opts...,
	)
	assignResponseHandler := connect.NewUnaryHandler(
		MessageServiceAssignResponseProcedure,
		svc.AssignResponse,
		opts...,
	)
	linkResponseHandler := connect.NewUnaryHandler(
		MessageServiceLinkResponseProcedure,
		svc.LinkResponse,
		opts...,
	)
	return "/luci.v1.MessageService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MessageServiceListMessagesProcedure:
			listMessagesHandler.ServeHTTP(w, r)
		case MessageServiceAssignResponseProcedure:
			assignResponseHandler.ServeHTTP(w, r)
		case MessageServiceLinkResponseProcedure:
			linkResponseHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedMessageServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedMessageServiceHandler struct{}

func (UnimplementedMessageServiceHandler) ListMessages(context.Context, *connect.Request[luciv1.ListMessagesRequest]) (*connect.Response[luciv1.ListMessagesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.MessageService.ListMessages is not implemented"))
}

func (UnimplementedMessageServiceHandler) AssignResponse(context.Context, *connect.Request[luciv1.AssignResponseRequest]) (*connect.Response[luciv1.AssignResponseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.MessageService.AssignResponse is not implemented"))
}

func (UnimplementedMessageServiceHandler) LinkResponse(context.Context, *connect.Request[luciv1.LinkResponseRequest]) (*connect.Response[luciv1.LinkResponseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.MessageService.LinkResponse is not implemented"))
}

// QuoteServiceClient is a client for the luci.v1.QuoteService service.
type QuoteServiceClient interface {
	ListQuotes(context.Context, *connect.Request[luciv1.ListQuotesRequest]) (*connect.Response[luciv1.ListQuotesResponse], error)
	CreateQuote(context.Context, *connect.Request[luciv1.CreateQuoteRequest]) (*connect.Response[luciv1.Quote], error)
}

// NewQuoteServiceClient constructs a client for the luci.v1.QuoteService service. The
// baseURL must not include the service path.
func NewQuoteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) QuoteServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &quoteServiceClient{
		listQuotes: connect.NewClient[luciv1.ListQuotesRequest, luciv1.ListQuotesResponse](
			httpClient,
			baseURL+QuoteServiceListQuotesProcedure,
			opts...,
		),
		createQuote: connect.NewClient[luciv1.CreateQuoteRequest, luciv1.Quote](
			httpClient,
			baseURL+QuoteServiceCreateQuoteProcedure,
			opts...,
		),
	}
}

type quoteServiceClient struct {
	listQuotes  *connect.Client[luciv1.ListQuotesRequest, luciv1.ListQuotesResponse]
	createQuote *connect.Client[luciv1.CreateQuoteRequest, luciv1.Quote]
}

func (c *quoteServiceClient) ListQuotes(ctx context.Context, req *connect.Request[luciv1.ListQuotesRequest]) (*connect.Response[luciv1.ListQuotesResponse], error) {
	return c.listQuotes.CallUnary(ctx, req)
}

func (c *quoteServiceClient) CreateQuote(ctx context.Context, req *connect.Request[luciv1.CreateQuoteRequest]) (*connect.Response[luciv1.Quote], error) {
	return c.createQuote.CallUnary(ctx, req)
}

// QuoteServiceHandler is an implementation of the luci.v1.QuoteService service.
type QuoteServiceHandler interface {
	ListQuotes(context.Context, *connect.Request[luciv1.ListQuotesRequest]) (*connect.Response[luciv1.ListQuotesResponse], error)
	CreateQuote(context.Context, *connect.Request[luciv1.CreateQuoteRequest]) (*connect.Response[luciv1.Quote], error)
}

// NewQuoteServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewQuoteServiceHandler(svc QuoteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listQuotesHandler := connect.NewUnaryHandler(
		QuoteServiceListQuotesProcedure,
		svc.ListQuotes,
		opts...,
	)
	createQuoteHandler := connect.NewUnaryHandler(
		QuoteServiceCreateQuoteProcedure,
		svc.CreateQuote,
		opts...,
	)
	return "/luci.v1.QuoteService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case QuoteServiceListQuotesProcedure:
			listQuotesHandler.ServeHTTP(w, r)
		case QuoteServiceCreateQuoteProcedure:
			createQuoteHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedQuoteServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedQuoteServiceHandler struct{}

func (UnimplementedQuoteServiceHandler) ListQuotes(context.Context, *connect.Request[luciv1.ListQuotesRequest]) (*connect.Response[luciv1.ListQuotesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.QuoteService.ListQuotes is not implemented"))
}

func (UnimplementedQuoteServiceHandler) CreateQuote(context.Context, *connect.Request[luciv1.CreateQuoteRequest]) (*connect.Response[luciv1.Quote], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.QuoteService.CreateQuote is not implemented"))
}

// ConfigServiceClient is a client for the luci.v1.ConfigService service.
type ConfigServiceClient interface {
	GetCustomConfig(context.Context, *connect.Request[luciv1.GetCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error)
	UpdateCustomConfig(context.Context, *connect.Request[luciv1.UpdateCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error)
}

// NewConfigServiceClient constructs a client for the luci.v1.ConfigService service. The
// baseURL must not include the service path.
func NewConfigServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ConfigServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &configServiceClient{
		getCustomConfig: connect.NewClient[luciv1.GetCustomConfigRequest, luciv1.CustomConfig](
			httpClient,
			baseURL+ConfigServiceGetCustomConfigProcedure,
			opts...,
		),
		updateCustomConfig: connect.NewClient[luciv1.UpdateCustomConfigRequest, luciv1.CustomConfig](
			httpClient,
			baseURL+ConfigServiceUpdateCustomConfigProcedure,
			opts...,
		),
	}
}

type configServiceClient struct {
	getCustomConfig    *connect.Client[luciv1.GetCustomConfigRequest, luciv1.CustomConfig]
	updateCustomConfig *connect.Client[luciv1.UpdateCustomConfigRequest, luciv1.CustomConfig]
}

func (c *configServiceClient) GetCustomConfig(ctx context.Context, req *connect.Request[luciv1.GetCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error) {
	return c.getCustomConfig.CallUnary(ctx, req)
}

func (c *configServiceClient) UpdateCustomConfig(ctx context.Context, req *connect.Request[luciv1.UpdateCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error) {
	return c.updateCustomConfig.CallUnary(ctx, req)
}

// ConfigServiceHandler is an implementation of the luci.v1.ConfigService service.
type ConfigServiceHandler interface {
	GetCustomConfig(context.Context, *connect.Request[luciv1.GetCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error)
	UpdateCustomConfig(context.Context, *connect.Request[luciv1.UpdateCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error)
}

// NewConfigServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewConfigServiceHandler(svc ConfigServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getCustomConfigHandler := connect.NewUnaryHandler(
		ConfigServiceGetCustomConfigProcedure,
		svc.GetCustomConfig,
		opts...,
	)
	updateCustomConfigHandler := connect.NewUnaryHandler(
		ConfigServiceUpdateCustomConfigProcedure,
		svc.UpdateCustomConfig,
		opts...,
	)
	return "/luci.v1.ConfigService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ConfigServiceGetCustomConfigProcedure:
			getCustomConfigHandler.ServeHTTP(w, r)
		case ConfigServiceUpdateCustomConfigProcedure:
			updateCustomConfigHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedConfigServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedConfigServiceHandler struct{}

func (UnimplementedConfigServiceHandler) GetCustomConfig(context.Context, *connect.Request[luciv1.GetCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.ConfigService.GetCustomConfig is not implemented"))
}

func (UnimplementedConfigServiceHandler) UpdateCustomConfig(context.Context, *connect.Request[luciv1.UpdateCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.ConfigService.UpdateCustomConfig is not implemented"))
}

// WordServiceClient is a client for the luci.v1.WordService service.
type WordServiceClient interface {
	ListWords(context.Context, *connect.Request[luciv1.ListWordsRequest]) (*connect.Response[luciv1.ListWordsResponse], error)
	UpdateWord(context.Context, *connect.Request[luciv1.UpdateWordRequest]) (*connect.Response[luciv1.Word], error)
	AddMeaning(context.Context, *connect.Request[luciv1.AddMeaningRequest]) (*connect.Response[luciv1.Word], error)
}

// NewWordServiceClient constructs a client for the luci.v1.WordService service. The
// baseURL must not include the service path.
func NewWordServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) WordServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &wordServiceClient{
		listWords: connect.NewClient[luciv1.ListWordsRequest, luciv1.ListWordsResponse](
			httpClient,
			baseURL+WordServiceListWordsProcedure,
			opts...,
		),
		updateWord: connect.NewClient[luciv1.UpdateWordRequest, luciv1.Word](
			httpClient,
			baseURL+WordServiceUpdateWordProcedure,
			opts...,
		),
		addMeaning: connect.NewClient[luciv1.AddMeaningRequest, luciv1.Word](
			httpClient,
			baseURL+WordServiceAddMeaningProcedure,
			opts...,
		),
	}
}

type wordServiceClient struct {
	listWords  *connect.Client[luciv1.ListWordsRequest, luciv1.ListWordsResponse]
	updateWord *connect.Client[luciv1.UpdateWordRequest, luciv1.Word]
	addMeaning *connect.Client[luciv1.AddMeaningRequest, luciv1.Word]
}

func (c *wordServiceClient) ListWords(ctx context.Context, req *connect.Request[luciv1.ListWordsRequest]) (*connect.Response[luciv1.ListWordsResponse], error) {
	return c.listWords.CallUnary(ctx, req)
}

func (c *wordServiceClient) UpdateWord(ctx context.Context, req *connect.Request[luciv1.UpdateWordRequest]) (*connect.Response[luciv1.Word], error) {
	return c.updateWord.CallUnary(ctx, req)
}

func (c *wordServiceClient) AddMeaning(ctx context.Context, req *connect.Request[luciv1.AddMeaningRequest]) (*connect.Response[luciv1.Word], error) {
	return c.addMeaning.CallUnary(ctx, req)
}

// WordServiceHandler is an implementation of the luci.v1.WordService service.
type WordServiceHandler interface {
	ListWords(context.Context, *connect.Request[luciv1.ListWordsRequest]) (*connect.Response[luciv1.ListWordsResponse], error)
	UpdateWord(context.Context, *connect.Request[luciv1.UpdateWordRequest]) (*connect.Response[luciv1.Word], error)
	AddMeaning(context.Context, *connect.Request[luciv1.AddMeaningRequest]) (*connect.Response[luciv1.Word], error)
}

// NewWordServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewWordServiceHandler(svc WordServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listWordsHandler := connect.NewUnaryHandler(
		WordServiceListWordsProcedure,
		svc.ListWords,
		opts...,
	)
	updateWordHandler := connect.NewUnaryHandler(
		WordServiceUpdateWordProcedure,
		svc.UpdateWord,
		opts...,
	)
	addMeaningHandler := connect.NewUnaryHandler(
		WordServiceAddMeaningProcedure,
		svc.AddMeaning,
		opts...,
	)
	return "/luci.v1.WordService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case WordServiceListWordsProcedure:
			listWordsHandler.ServeHTTP(w, r)
		case WordServiceUpdateWordProcedure:
			updateWordHandler.ServeHTTP(w, r)
		case WordServiceAddMeaningProcedure:
			addMeaningHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedWordServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedWordServiceHandler struct{}

func (UnimplementedWordServiceHandler) ListWords(context.Context, *connect.Request[luciv1.ListWordsRequest]) (*connect.Response[luciv1.ListWordsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.WordService.ListWords is not implemented"))
}

func (UnimplementedWordServiceHandler) UpdateWord(context.Context, *connect.Request[luciv1.UpdateWordRequest]) (*connect.Response[luciv1.Word], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.WordService.UpdateWord is not implemented"))
}

func (UnimplementedWordServiceHandler) AddMeaning(context.Context, *connect.Request[luciv1.AddMeaningRequest]) (*connect.Response[luciv1.Word], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("luci.v1.WordService.AddMeaning is not implemented"))
}
