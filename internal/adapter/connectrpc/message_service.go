package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/api/luci/v1/luciv1connect"
	"github.com/eslsoft/luci/internal/adapter/mapping"
	"github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/internal/usecase"
)

var _ luciv1connect.MessageServiceHandler = (*MessageServiceServer)(nil)

type MessageServiceServer struct {
	luciv1connect.UnimplementedMessageServiceHandler
	uc usecase.MessageUsecase
}

func NewMessageServiceServer(uc usecase.MessageUsecase) *MessageServiceServer {
	return &MessageServiceServer{uc: uc}
}

func (s *MessageServiceServer) ListMessages(ctx context.Context, req *connect.Request[luciv1.ListMessagesRequest]) (*connect.Response[luciv1.ListMessagesResponse], error) {
	items, err := s.uc.List(ctx, &repository.ListMessageQuery{FilterOrder: convertFilterOrder(req.Msg)})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&luciv1.ListMessagesResponse{Messages: mapping.ToPbMessages(items)}), nil
}

func (s *MessageServiceServer) AssignResponse(ctx context.Context, req *connect.Request[luciv1.AssignResponseRequest]) (*connect.Response[luciv1.AssignResponseResponse], error) {
	items, err := s.uc.AssignResponse(ctx, req.Msg.GetText(), mapping.FromPbMessageInput(req.Msg.GetResponse()))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&luciv1.AssignResponseResponse{Messages: mapping.ToPbMessages(items)}), nil
}

func (s *MessageServiceServer) LinkResponse(ctx context.Context, req *connect.Request[luciv1.LinkResponseRequest]) (*connect.Response[luciv1.LinkResponseResponse], error) {
	if err := s.uc.LinkResponse(ctx, req.Msg.GetMessageId(), req.Msg.GetResponseId()); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&luciv1.LinkResponseResponse{}), nil
}
