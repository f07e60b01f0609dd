package gdomains

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/qdm12/gdomains-updater/internal/events"
)

const userAgent = "gdomains-updater github.com/qdm12/gdomains-updater"

// Outcome is the result of a single update attempt.
type Outcome struct {
	Success bool
	// Address is the address Google Domains reports the
	// domain now points to, and is only set on success.
	Address netip.Addr
	// RawBody is the response body, empty if no response
	// was received.
	RawBody string
	Err     error
}

type Updater struct {
	client   *resty.Client
	notifier Notifier
	logger   Logger
	timeNow  func() time.Time
}

func New(httpClient *http.Client, notifier Notifier, logger Logger) *Updater {
	client := resty.NewWithClient(makeLogClient(httpClient, logger)).
		SetLogger(&restyLogger{logger: logger}).
		SetHeader("User-Agent", userAgent)
	return &Updater{
		client:   client,
		notifier: notifier,
		logger:   logger,
		timeNow:  time.Now,
	}
}

// AttemptUpdate sends a single update request for the domain, bounded
// by the timeout given, and fires a domain updated event on success.
// It never retries, and all failures are reported in the outcome.
// Once ctx is canceled, the outcome is an ErrCanceled failure and
// no event is fired, even if Google Domains answered with success.
func (u *Updater) AttemptUpdate(ctx context.Context, domain,
	username, password string, timeout time.Duration) (outcome Outcome) {
	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	response, err := u.client.R().
		SetContext(requestCtx).
		SetQueryParam("hostname", domain).
		Get(buildURL(username, password))
	if err != nil {
		outcome.Err = classifyRequestError(ctx, requestCtx, err)
		switch {
		case errors.Is(outcome.Err, ErrCanceled):
			u.logger.Debug(fmt.Sprintf("updating %s: %s", domain, outcome.Err))
		case errors.Is(outcome.Err, ErrTimeout):
			u.logger.Warn(fmt.Sprintf("updating %s: timed out after %s", domain, timeout))
		default:
			u.logger.Warn(fmt.Sprintf("updating %s: %s", domain, outcome.Err))
		}
		return outcome
	}

	outcome.RawBody = response.String()
	parsed := ParseResponse(outcome.RawBody)
	switch parsed.Kind {
	case ResponseSuccess:
		if ctx.Err() != nil {
			outcome.Err = fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
			u.logger.Debug(fmt.Sprintf("updating %s: discarding %s %s: %s",
				domain, parsed.Status, parsed.Address, outcome.Err))
			return outcome
		}
		outcome.Success = true
		outcome.Address = parsed.Address
		u.logger.Info(fmt.Sprintf("%s: %s %s", domain, parsed.Status, parsed.Address))
		u.notifier.Fire(events.NewDomainUpdated(domain, parsed.Address, u.timeNow()))
	case ResponseRejection:
		outcome.Err = fmt.Errorf("%w: %w", ErrProviderRejection, parsed.Err)
		u.logger.Error(fmt.Sprintf("updating %s: %s (response body %q)",
			domain, outcome.Err, outcome.RawBody))
	case ResponseUnrecognized:
		outcome.Err = fmt.Errorf("%w (HTTP status %d)", parsed.Err, response.StatusCode())
		u.logger.Error(fmt.Sprintf("updating %s: %s", domain, outcome.Err))
	}
	return outcome
}

func buildURL(username, password string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "domains.google.com",
		Path:   "/nic/update",
		User:   url.UserPassword(username, password),
	}
	return u.String()
}

func classifyRequestError(parentCtx, requestCtx context.Context, err error) error {
	if parentCtx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	deadlineReached := errors.Is(requestCtx.Err(), context.DeadlineExceeded)
	var netErr net.Error
	if deadlineReached || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrConnectivity, err)
}

// restyLogger routes resty's own messages to the component logger.
type restyLogger struct {
	logger Logger
}

func (r *restyLogger) Errorf(format string, v ...any) {
	r.logger.Error(fmt.Sprintf(format, v...))
}

func (r *restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn(fmt.Sprintf(format, v...))
}

func (r *restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug(fmt.Sprintf(format, v...))
}
