package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/records"
)

// connectError maps view errors onto Connect codes.
func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, dialogs.ErrInvalid):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, records.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// collect attaches a recorder to ctx so the notifications raised while
// handling one call can be returned with its response.
func collect(ctx context.Context) (context.Context, *notify.Recorder) {
	rec := &notify.Recorder{}
	return notify.WithNotifier(ctx, rec), rec
}
