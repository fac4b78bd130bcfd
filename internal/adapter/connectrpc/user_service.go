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

var _ luciv1connect.UserServiceHandler = (*UserServiceServer)(nil)

type UserServiceServer struct {
	luciv1connect.UnimplementedUserServiceHandler
	uc usecase.UserUsecase
}

func NewUserServiceServer(uc usecase.UserUsecase) *UserServiceServer {
	return &UserServiceServer{uc: uc}
}

func (s *UserServiceServer) ListUsers(ctx context.Context, req *connect.Request[luciv1.ListUsersRequest]) (*connect.Response[luciv1.ListUsersResponse], error) {
	items, err := s.uc.List(ctx, &repository.ListUserQuery{FilterOrder: convertFilterOrder(req.Msg)})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&luciv1.ListUsersResponse{
		Users: lo.Map(items, func(item *entity.User, _ int) *luciv1.User {
			return mapping.ToPbUser(item)
		}),
	}), nil
}

// UpdateUser records one interaction. The ledger notification, if enabled,
// is queued after the write commits and never affects the response.
func (s *UserServiceServer) UpdateUser(ctx context.Context, req *connect.Request[luciv1.UpdateUserRequest]) (*connect.Response[luciv1.User], error) {
	result, err := s.uc.Update(ctx, mapping.FromPbUpdateUser(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbUser(result)), nil
}
