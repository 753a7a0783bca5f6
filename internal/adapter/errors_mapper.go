// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/go-resty/resty/v2"
)

// mapRemoteError converts exceptions raised by the remote side into the
// typed exceptions of this package. Any other error, including unknown
// exception types, is returned unchanged.
func mapRemoteError(err error) error {
	var remote *transport.RemoteException
	if !errors.As(err, &remote) {
		return err
	}

	switch remote.Type {
	case "user":
		return &UserException{Code: ErrorCode(remote.ErrorCode), Parameter: remote.Parameter}
	case "system":
		return &SystemException{
			Code:              ErrorCode(remote.ErrorCode),
			Message:           remote.Message,
			RateLimitDuration: remote.RateLimitDuration,
		}
	case "notFound":
		return &NotFoundException{Identifier: remote.Identifier, Key: remote.Key}
	default:
		return err
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
