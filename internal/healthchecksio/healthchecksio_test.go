package healthchecksio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/qdm12/gdomains-updater/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Error(string) {}

func Test_Client_Ping(t *testing.T) {
	t.Parallel()

	const uuid = "e5b1a2c4-8f3d-4b8e-9a6f-2d7c1e0b9a34"

	testCases := map[string]struct {
		uuid         string
		state        State
		status       int
		expectedPath string
		errWrapped   error
		errMessage   string
	}{
		"disabled": {
			state: Ok,
		},
		"ok": {
			uuid:         uuid,
			state:        Ok,
			status:       http.StatusOK,
			expectedPath: "/" + uuid,
		},
		"exit 1": {
			uuid:         uuid,
			state:        Exit1,
			status:       http.StatusOK,
			expectedPath: "/" + uuid + "/1",
		},
		"bad status": {
			uuid:         uuid,
			state:        Start,
			status:       http.StatusNotFound,
			expectedPath: "/" + uuid + "/start",
			errWrapped:   ErrStatusCode,
			errMessage:   "bad status code: 404 Not Found",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, testCase.expectedPath, r.URL.Path)
				w.WriteHeader(testCase.status)
			}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL, testCase.uuid, noopLogger{})

			err := client.Ping(context.Background(), testCase.state)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Client_HandleEvent(t *testing.T) {
	t.Parallel()

	pinged := make(chan string)
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		pinged <- r.URL.Path
	}))
	t.Cleanup(server.Close)

	client := New(server.Client(), server.URL, "some-uuid", noopLogger{})

	event := events.NewDomainUpdated("sub.example.com",
		netip.MustParseAddr("203.0.113.7"), time.Unix(1700000000, 0))
	client.HandleEvent(event)

	select {
	case path := <-pinged:
		assert.Equal(t, "/some-uuid", path)
	case <-time.After(5 * time.Second):
		require.Fail(t, "healthchecks.io not pinged")
	}
}
