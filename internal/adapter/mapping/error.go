package mapping

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/eslsoft/luci/internal/entity"
)

// ToConnectError translates usecase errors into connect errors. Errors that
// already carry a connect code pass through.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return err
	}
	return connect.NewError(ConnectCode(err), err)
}

// ConnectCode picks the connect code for an error category.
func ConnectCode(err error) connect.Code {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return connect.CodeInvalidArgument
	case errors.Is(err, entity.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, entity.ErrDecode):
		return connect.CodeDataLoss
	case errors.Is(err, entity.ErrConstraintViolation):
		return connect.CodeAlreadyExists
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	default:
		return connect.CodeInternal
	}
}
