package testutil

import (
	"net/http"
	"time"

	"askthem/pkg/requestcontext"
)

// AdminTokenHeader is the header checked by the admin middleware.
const AdminTokenHeader = "X-Admin-Token"

// WithAdminToken sets the admin token header on req.
func WithAdminToken(req *http.Request, token string) *http.Request {
	req.Header.Set(AdminTokenHeader, token)
	return req
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
