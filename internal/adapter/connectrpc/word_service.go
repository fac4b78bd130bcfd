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

var _ luciv1connect.WordServiceHandler = (*WordServiceServer)(nil)

type WordServiceServer struct {
	luciv1connect.UnimplementedWordServiceHandler
	uc usecase.WordUsecase
}

func NewWordServiceServer(uc usecase.WordUsecase) *WordServiceServer {
	return &WordServiceServer{uc: uc}
}

func (s *WordServiceServer) ListWords(ctx context.Context, req *connect.Request[luciv1.ListWordsRequest]) (*connect.Response[luciv1.ListWordsResponse], error) {
	msg := req.Msg
	query := &repository.ListWordQuery{
		Pagination:  convertPagination(msg),
		FilterOrder: convertFilterOrder(msg),
	}
	items, total, err := s.uc.List(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	total32, err := toInt32("total words", total)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&luciv1.ListWordsResponse{
		Words: lo.Map(items, func(item *entity.Word, _ int) *luciv1.Word {
			return mapping.ToPbWord(item)
		}),
		Pagination: &luciv1.PaginationResponse{
			Total:    total32,
			PageNo:   query.PageNo,
			PageSize: query.PageSize,
		},
	}), nil
}

func (s *WordServiceServer) UpdateWord(ctx context.Context, req *connect.Request[luciv1.UpdateWordRequest]) (*connect.Response[luciv1.Word], error) {
	result, err := s.uc.UpdateTags(ctx, req.Msg.GetToken(), mapping.FromPbWordTags(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbWord(result)), nil
}

func (s *WordServiceServer) AddMeaning(ctx context.Context, req *connect.Request[luciv1.AddMeaningRequest]) (*connect.Response[luciv1.Word], error) {
	msg := req.Msg
	result, err := s.uc.AddMeaning(ctx, msg.GetToken(), msg.GetMeaning(), msg.GetContext())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbWord(result)), nil
}
