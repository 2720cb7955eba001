package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// リモートAPIのエラーをHTTPErrorに寄せる。
// 存在しないは404、それ以外は502に落とす。
func mapAPIError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	return NewHTTPError(http.StatusBadGateway, "delivery api error")
}
