package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/stellar/go/clients/horizonclient"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

func isNotFound(err error) bool {
	if horizonclient.IsNotFoundError(err) {
		return true
	}
	var hErr *horizonclient.Error
	return errors.As(err, &hErr) && hErr.Problem.Status == http.StatusNotFound
}

// mapSubmitError turns a Horizon problem response into a *RejectedError.
// Rate limiting and server faults keep their transport sentinels. Anything
// that is not a Horizon problem (timeouts, resets) is returned as is.
func mapSubmitError(err error) error {
	var hErr *horizonclient.Error
	if !errors.As(err, &hErr) {
		return err
	}
	switch {
	case hErr.Problem.Status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case hErr.Problem.Status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	rejected := &RejectedError{Status: hErr.Problem.Status}
	if codes, cErr := hErr.ResultCodes(); cErr == nil && codes != nil {
		rejected.TransactionCode = codes.TransactionCode
		rejected.OperationCodes = codes.OperationCodes
	}
	return rejected
}
