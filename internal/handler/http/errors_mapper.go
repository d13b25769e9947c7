package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/insider-vault/internal/access"
	"github.com/MKhiriev/insider-vault/internal/index"
	"github.com/MKhiriev/insider-vault/internal/ledger"
	"github.com/MKhiriev/insider-vault/internal/store"
	"github.com/MKhiriev/insider-vault/internal/validators"
	"github.com/MKhiriev/insider-vault/internal/workflow"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptyCompany:    http.StatusBadRequest,
	validators.ErrEmptyOwner:      http.StatusBadRequest,
	validators.ErrInvalidDataType: http.StatusBadRequest,
	validators.ErrInvalidValue:    http.StatusBadRequest,

	store.ErrNotFound:        http.StatusNotFound,
	store.ErrInvalidDataType: http.StatusBadRequest,

	access.ErrSignerDeclined: http.StatusForbidden,

	workflow.ErrUnauthorized:      http.StatusForbidden,
	workflow.ErrInvalidTransition: http.StatusConflict,

	index.ErrIndexContention: http.StatusConflict,
	ledger.ErrUnavailable:    http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
