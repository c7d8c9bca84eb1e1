// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anas Zait

package service

import (
	"errors"

	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/store"
)

// mapAdapterError translates the adapter's transport error into the
// business error a caller would have seen from the server-side service,
// so the TUI handles local and remote failures uniformly.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return errors.Join(ErrInvalidDataProvided, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return errors.Join(ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrConflict):
		return errors.Join(store.ErrEmailAlreadyExists, err)
	}

	return err
}
