package http

import (
	"errors"
	"net/http"

	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVerseNotFound:           http.StatusNotFound,
	service.ErrUnknownExportFormat:     http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrProjectNotFound:    http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrAudioNotFound:      http.StatusNotFound,

	// a pass owned by someone else looks exactly like a missing one
	store.ErrForeignProject: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
