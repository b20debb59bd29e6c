package rest

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/quasdata/colfam/internal/errs"
)

// mapError translates transport-level failures into *errs.Error.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	// Dial, TLS, and DNS failures all surface as url.Error wrapping an
	// op error; anything that never produced a response is connectivity.
	return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
}

// statusError translates a non-success HTTP status into *errs.Error.
func statusError(status int, msg string) *errs.Error {
	kind := errs.ErrKindStoreFailed
	switch status {
	case http.StatusNotFound:
		kind = errs.ErrKindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = errs.ErrKindPermissionDenied
	}
	return errs.Newf(kind, "%s: store answered %d", msg, status)
}
