package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/api/luci/v1/luciv1connect"
	"github.com/eslsoft/luci/internal/adapter/mapping"
	"github.com/eslsoft/luci/internal/usecase"
)

var _ luciv1connect.ConfigServiceHandler = (*ConfigServiceServer)(nil)

type ConfigServiceServer struct {
	luciv1connect.UnimplementedConfigServiceHandler
	uc usecase.CustomConfigUsecase
}

func NewConfigServiceServer(uc usecase.CustomConfigUsecase) *ConfigServiceServer {
	return &ConfigServiceServer{uc: uc}
}

func (s *ConfigServiceServer) GetCustomConfig(ctx context.Context, req *connect.Request[luciv1.GetCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error) {
	result, err := s.uc.Get(ctx, req.Msg.GetReference())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbCustomConfig(result)), nil
}

func (s *ConfigServiceServer) UpdateCustomConfig(ctx context.Context, req *connect.Request[luciv1.UpdateCustomConfigRequest]) (*connect.Response[luciv1.CustomConfig], error) {
	result, err := s.uc.Update(ctx, req.Msg.GetReference(), mapping.FromPbCustomConfigPatch(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbCustomConfig(result)), nil
}
