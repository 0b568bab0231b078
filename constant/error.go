package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrSearchCriteria
	ErrCredentialExists
	ErrInvalidPassword
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "error internal",
	ErrNotFound:         "data not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorize:      "unauthorize request",
	ErrSearchCriteria:   "search criteria are not specified",
	ErrCredentialExists: "email already exists",
	ErrInvalidPassword:  "password invalid",
	ErrTooManyRequests:  "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrSearchCriteria:   http.StatusBadRequest,
	ErrCredentialExists: http.StatusBadRequest,
	ErrInvalidPassword:  http.StatusBadRequest,
	ErrTooManyRequests:  http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrSearchCriteria:   "0005",
	ErrCredentialExists: "0006",
	ErrInvalidPassword:  "0007",
	ErrTooManyRequests:  "0008",
}
