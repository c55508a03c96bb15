package apierr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a failure independently of its transport status.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindUnauthorized   Kind = "unauthorized"
	KindForbidden      Kind = "forbidden"
	KindBadRequest     Kind = "bad_request"
	KindConflict       Kind = "conflict"
	KindDataCorruption Kind = "data_corruption"
	KindInternal       Kind = "internal"
)

// Error codes surfaced to clients.
const (
	CodeRowAlreadyExist     = "row_already_exist"
	CodeUserAlreadySignedUp = "user_already_signed_up"
	CodeDuplicatedNickname  = "duplicated_nickname"
	CodeInvalidRequest      = "invalid_request"
	CodeNotAccessible       = "not_accessible"
	CodeInvalidJWT          = "invalid_jwt"
	CodeNotSignIn           = "not_sign_in"
	CodeUserDoesNotExist    = "user_does_not_exist"
	CodeDataDoesNotExist    = "data_does_not_exist"
	CodeConflictState       = "conflict_state"
	CodeUnprocessableEntity = "unprocessable_entity"
	CodeInternalServerError = "internal_server_error"
	CodeServiceUnavailable  = "service_unavailable"
)

type Error struct {
	Status int
	Code   string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Kind: kindForStatus(status), Err: err}
}

func NotFound(code, msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Kind: KindNotFound, Err: errors.New(msg)}
}

func Unauthorized(code, msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: code, Kind: KindUnauthorized, Err: errors.New(msg)}
}

func Forbidden(code, msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: code, Kind: KindForbidden, Err: errors.New(msg)}
}

func BadRequest(code, msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Kind: KindBadRequest, Err: errors.New(msg)}
}

func Conflict(code, msg string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Kind: KindConflict, Err: errors.New(msg)}
}

// DataCorruption marks stored data that cannot be decoded into its declared
// shape. It is never recovered from by substituting defaults.
func DataCorruption(msg string, cause error) *Error {
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternalServerError, Kind: KindDataCorruption, Err: errors.New(msg)}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternalServerError, Kind: KindInternal, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != "" {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// StatusOf returns the HTTP status carried by err, defaulting to 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// CodeOf returns the client-facing code carried by err.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Code != "" {
		return ae.Code
	}
	return CodeInternalServerError
}

// FromDB maps storage failures onto api errors. Errors that already carry a
// kind pass through untouched.
func FromDB(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Status: http.StatusNotFound, Code: CodeDataDoesNotExist, Kind: KindNotFound, Err: fmt.Errorf("%s: %w", op, err)}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Status: http.StatusConflict, Code: CodeRowAlreadyExist, Kind: KindConflict, Err: fmt.Errorf("%s: %w", op, err)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Error{Status: http.StatusServiceUnavailable, Code: CodeServiceUnavailable, Kind: KindInternal, Err: fmt.Errorf("%s: %w", op, err)}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			return &Error{Status: http.StatusConflict, Code: CodeRowAlreadyExist, Kind: KindConflict, Err: fmt.Errorf("%s: %w", op, err)}
		case "23503": // foreign_key_violation
			return &Error{Status: http.StatusConflict, Code: CodeConflictState, Kind: KindConflict, Err: fmt.Errorf("%s: %w", op, err)}
		}
	}
	return Internal(fmt.Errorf("%s: %w", op, err))
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindBadRequest
	case http.StatusConflict:
		return KindConflict
	default:
		return KindInternal
	}
}
