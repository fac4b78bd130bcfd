package connectrpc

import (
	"context"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/api/luci/v1/luciv1connect"
	"github.com/eslsoft/luci/internal/adapter/mapping"
	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/internal/usecase"
)

var _ luciv1connect.QuoteServiceHandler = (*QuoteServiceServer)(nil)

type QuoteServiceServer struct {
	luciv1connect.UnimplementedQuoteServiceHandler
	uc usecase.QuoteUsecase
}

func NewQuoteServiceServer(uc usecase.QuoteUsecase) *QuoteServiceServer {
	return &QuoteServiceServer{uc: uc}
}

func (s *QuoteServiceServer) ListQuotes(ctx context.Context, req *connect.Request[luciv1.ListQuotesRequest]) (*connect.Response[luciv1.ListQuotesResponse], error) {
	items, err := s.uc.List(ctx, &repository.ListQuoteQuery{
		Reference:   req.Msg.GetReference(),
		FilterOrder: convertFilterOrder(req.Msg),
	})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&luciv1.ListQuotesResponse{
		Quotes: lo.Map(items, func(item *entity.Quote, _ int) *luciv1.Quote {
			return mapping.ToPbQuote(item)
		}),
	}), nil
}

func (s *QuoteServiceServer) CreateQuote(ctx context.Context, req *connect.Request[luciv1.CreateQuoteRequest]) (*connect.Response[luciv1.Quote], error) {
	result, err := s.uc.Create(ctx, mapping.FromPbCreateQuote(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbQuote(result)), nil
}
