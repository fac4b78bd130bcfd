// Package connectrpc implements the luci.v1 connect handlers on top of the
// usecases.
package connectrpc

import (
	"context"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/api/luci/v1/luciv1connect"
	"github.com/eslsoft/luci/internal/adapter/mapping"
	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/usecase"
)

var _ luciv1connect.EmotionServiceHandler = (*EmotionServiceServer)(nil)

type EmotionServiceServer struct {
	luciv1connect.UnimplementedEmotionServiceHandler
	uc usecase.EmotionUsecase
}

func NewEmotionServiceServer(uc usecase.EmotionUsecase) *EmotionServiceServer {
	return &EmotionServiceServer{uc: uc}
}

func (s *EmotionServiceServer) ListEmotions(ctx context.Context, req *connect.Request[luciv1.ListEmotionsRequest]) (*connect.Response[luciv1.ListEmotionsResponse], error) {
	items, err := s.uc.List(ctx, req.Msg.GetReference())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&luciv1.ListEmotionsResponse{
		Emotions: lo.Map(items, func(item *entity.Emotion, _ int) *luciv1.Emotion {
			return mapping.ToPbEmotion(item)
		}),
	}), nil
}

func (s *EmotionServiceServer) UpdateEmotion(ctx context.Context, req *connect.Request[luciv1.UpdateEmotionRequest]) (*connect.Response[luciv1.Emotion], error) {
	result, err := s.uc.Update(ctx, req.Msg.GetReference(), mapping.FromPbEmotionDelta(req.Msg.GetDelta()))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbEmotion(result)), nil
}
