package gdomains

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gdomains-updater/internal/events"
	"github.com/qdm12/gdomains-updater/internal/gdomains/mock_gdomains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTextResponse(request *http.Request, statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    request,
	}
}

func Test_Updater_AttemptUpdate(t *testing.T) {
	t.Parallel()

	const (
		domain   = "sub.example.com"
		username = "user"
		password = "p@ss"
	)
	now := time.Unix(1700000000, 0)
	errDial := errors.New("dial tcp: connection refused")

	testCases := map[string]struct {
		timeout                 time.Duration
		cancelParent            bool
		cancelParentInRoundTrip bool
		roundTrip               func(r *http.Request) (*http.Response, error)
		setupMocks              func(logger *mock_gdomains.MockLogger, notifier *mock_gdomains.MockNotifier)
		outcome                 Outcome
		errWrapped              []error
		errMessage              string
	}{
		"good response": {
			timeout: time.Second,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				return newTextResponse(r, http.StatusOK, "good 203.0.113.7\n"), nil
			},
			setupMocks: func(logger *mock_gdomains.MockLogger, notifier *mock_gdomains.MockNotifier) {
				logger.EXPECT().Info("sub.example.com: good 203.0.113.7")
				notifier.EXPECT().Fire(gomock.AssignableToTypeOf(events.Event{})).
					Do(func(event events.Event) {
						assert.NotZero(t, event.ID)
						assert.Equal(t, events.DomainUpdated, event.Name)
						assert.Equal(t, now, event.Time)
						assert.Equal(t, domain, event.Domain)
						assert.Equal(t, netip.MustParseAddr("203.0.113.7"), event.IPAddress)
					})
			},
			outcome: Outcome{
				Success: true,
				Address: netip.MustParseAddr("203.0.113.7"),
				RawBody: "good 203.0.113.7",
			},
		},
		"nochg response": {
			timeout: time.Second,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				return newTextResponse(r, http.StatusOK, "nochg 2001:db8::1"), nil
			},
			setupMocks: func(logger *mock_gdomains.MockLogger, notifier *mock_gdomains.MockNotifier) {
				logger.EXPECT().Info("sub.example.com: nochg 2001:db8::1")
				notifier.EXPECT().Fire(gomock.AssignableToTypeOf(events.Event{}))
			},
			outcome: Outcome{
				Success: true,
				Address: netip.MustParseAddr("2001:db8::1"),
				RawBody: "nochg 2001:db8::1",
			},
		},
		"badauth rejection": {
			timeout: time.Second,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				return newTextResponse(r, http.StatusUnauthorized, "badauth"), nil
			},
			setupMocks: func(logger *mock_gdomains.MockLogger, _ *mock_gdomains.MockNotifier) {
				logger.EXPECT().Error("updating sub.example.com: " +
					"update rejected by Google Domains: bad authentication " +
					`(response body "badauth")`)
			},
			outcome:    Outcome{RawBody: "badauth"},
			errWrapped: []error{ErrProviderRejection, ErrAuth},
			errMessage: "update rejected by Google Domains: bad authentication",
		},
		"unrecognized response": {
			timeout: time.Second,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				return newTextResponse(r, http.StatusInternalServerError, "oops"), nil
			},
			setupMocks: func(logger *mock_gdomains.MockLogger, _ *mock_gdomains.MockNotifier) {
				logger.EXPECT().Error("updating sub.example.com: " +
					`unknown response received: "oops" (HTTP status 500)`)
			},
			outcome:    Outcome{RawBody: "oops"},
			errWrapped: []error{ErrUnknownResponse},
			errMessage: `unknown response received: "oops" (HTTP status 500)`,
		},
		"connectivity error": {
			timeout: time.Second,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				return nil, errDial
			},
			setupMocks: func(logger *mock_gdomains.MockLogger, _ *mock_gdomains.MockNotifier) {
				logger.EXPECT().Warn(gomock.AssignableToTypeOf("")).
					Do(func(s string) {
						assert.True(t, strings.HasPrefix(s,
							"updating sub.example.com: cannot reach Google Domains: "))
					})
			},
			errWrapped: []error{ErrConnectivity, errDial},
		},
		"timeout": {
			timeout: 20 * time.Millisecond,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				<-r.Context().Done()
				return nil, r.Context().Err()
			},
			setupMocks: func(logger *mock_gdomains.MockLogger, _ *mock_gdomains.MockNotifier) {
				logger.EXPECT().Warn("updating sub.example.com: timed out after 20ms")
			},
			errWrapped: []error{ErrTimeout, context.DeadlineExceeded},
		},
		"parent context canceled": {
			timeout:      time.Hour,
			cancelParent: true,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				<-r.Context().Done()
				return nil, r.Context().Err()
			},
			setupMocks: func(*mock_gdomains.MockLogger, *mock_gdomains.MockNotifier) {},
			errWrapped: []error{ErrCanceled, context.Canceled},
		},
		"parent context canceled after success response": {
			timeout:                 time.Second,
			cancelParentInRoundTrip: true,
			roundTrip: func(r *http.Request) (*http.Response, error) {
				return newTextResponse(r, http.StatusOK, "good 203.0.113.7"), nil
			},
			setupMocks: func(*mock_gdomains.MockLogger, *mock_gdomains.MockNotifier) {},
			outcome:    Outcome{RawBody: "good 203.0.113.7"},
			errWrapped: []error{ErrCanceled, context.Canceled},
			errMessage: "update canceled: context canceled",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			logger := mock_gdomains.NewMockLogger(ctrl)
			logger.EXPECT().Debug(gomock.Any()).AnyTimes()
			notifier := mock_gdomains.NewMockNotifier(ctrl)
			testCase.setupMocks(logger, notifier)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			client := &http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, http.MethodGet, r.Method)
					assert.Equal(t, "https", r.URL.Scheme)
					assert.Equal(t, "domains.google.com", r.URL.Host)
					assert.Equal(t, "/nic/update", r.URL.Path)
					assert.Equal(t, "hostname=sub.example.com", r.URL.RawQuery)
					requestUsername, requestPassword, ok := r.BasicAuth()
					assert.True(t, ok)
					assert.Equal(t, username, requestUsername)
					assert.Equal(t, password, requestPassword)
					assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
					if testCase.cancelParentInRoundTrip {
						cancel()
					}
					return testCase.roundTrip(r)
				}),
			}

			updater := New(client, notifier, logger)
			updater.timeNow = func() time.Time { return now }

			if testCase.cancelParent {
				go func() {
					time.Sleep(10 * time.Millisecond)
					cancel()
				}()
			}

			outcome := updater.AttemptUpdate(ctx, domain, username, password, testCase.timeout)

			for _, expectedErr := range testCase.errWrapped {
				assert.ErrorIs(t, outcome.Err, expectedErr)
			}
			if testCase.errMessage != "" {
				assert.EqualError(t, outcome.Err, testCase.errMessage)
			}
			if len(testCase.errWrapped) == 0 {
				require.NoError(t, outcome.Err)
			}
			outcome.Err = nil
			assert.Equal(t, testCase.outcome, outcome)
		})
	}
}
