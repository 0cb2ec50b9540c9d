// Package errhttp maps domain sentinel errors and PostgreSQL constraint
// failures to HTTP status codes.
// Add a case to classify for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemservice/pkg/httpx"
	"github.com/ghuser/itemservice/pkg/telemetry"
	itemdomain "github.com/ghuser/itemservice/services/item/domain"
)

// SQLSTATE codes surfaced to clients. Everything else is a 500.
const (
	pgUniqueViolation   = "23505"
	pgNotNullViolation  = "23502"
	pgCheckViolation    = "23514"
	pgStringTruncation  = "22001"
	pgNumericOutOfRange = "22003"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// errors.Is / errors.As are used so wrapped errors are matched.
// 5xx responses carry a generic message and are reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		telemetry.CaptureError(r.Context(), err)
	}
	httpx.JSONError(w, status, msg)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, itemdomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity, err.Error()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return http.StatusConflict, "item conflicts with an existing record"
		case pgNotNullViolation, pgCheckViolation, pgStringTruncation, pgNumericOutOfRange:
			if pgErr.ColumnName != "" {
				return http.StatusUnprocessableEntity, "invalid value for " + pgErr.ColumnName
			}
			return http.StatusUnprocessableEntity, "item violates a storage constraint"
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
