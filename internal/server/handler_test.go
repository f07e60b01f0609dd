package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/schedule"
	"github.com/qdm12/gdomains-updater/internal/server/mock_server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_handlers(t *testing.T) {
	t.Parallel()

	buildInfo := models.BuildInformation{Version: "v1.0.0", Commit: "abcdefg", Date: "2023-01-01"}
	statuses := []models.DomainStatus{
		{
			Domain:   "z.example.com",
			State:    models.StateSetupFailed,
			Message:  "bad authentication",
			Interval: time.Hour,
		},
		{
			Domain:     "a.example.com",
			State:      models.StateRunning,
			Interval:   time.Minute,
			CurrentIP:  netip.MustParseAddr("203.0.113.7"),
			LastUpdate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	errReload := errors.New("domains file is malformed")

	testCases := map[string]struct {
		rootURL    string
		method     string
		path       string
		accept     string
		setupMocks func(lister *mock_server.MockStatusesLister,
			reloader *mock_server.MockReloader, logger *mock_server.MockLogger)
		statusCode int
		body       string
	}{
		"get domains": {
			rootURL: "/",
			method:  http.MethodGet,
			path:    "/api/v1/domains",
			setupMocks: func(lister *mock_server.MockStatusesLister,
				_ *mock_server.MockReloader, _ *mock_server.MockLogger) {
				lister.EXPECT().Statuses().Return(append([]models.DomainStatus(nil), statuses...))
			},
			statusCode: http.StatusOK,
			body: `[{"domain":"a.example.com","state":"running","interval":60000000000,` +
				`"current_ip":"203.0.113.7","last_update":"2023-01-01T00:00:00Z"},` +
				`{"domain":"z.example.com","state":"setup failed","message":"bad authentication",` +
				`"interval":3600000000000,"current_ip":"","last_update":"0001-01-01T00:00:00Z"}]` + "\n",
		},
		"get domains with unsupported accept": {
			rootURL: "/",
			method:  http.MethodGet,
			path:    "/api/v1/domains",
			accept:  "text/html",
			setupMocks: func(*mock_server.MockStatusesLister,
				*mock_server.MockReloader, *mock_server.MockLogger) {
			},
			statusCode: http.StatusNotAcceptable,
			body:       `{"error":"content type is not supported: \"text/html\""}` + "\n",
		},
		"version under root URL": {
			rootURL: "/gdomains/",
			method:  http.MethodGet,
			path:    "/gdomains/api/v1/version",
			setupMocks: func(*mock_server.MockStatusesLister,
				*mock_server.MockReloader, *mock_server.MockLogger) {
			},
			statusCode: http.StatusOK,
			body:       `{"version":"v1.0.0","commit":"abcdefg","buildDate":"2023-01-01"}` + "\n",
		},
		"reload": {
			rootURL: "/",
			method:  http.MethodPost,
			path:    "/api/v1/reload",
			setupMocks: func(_ *mock_server.MockStatusesLister,
				reloader *mock_server.MockReloader, _ *mock_server.MockLogger) {
				reloader.EXPECT().Reload(gomock.Any()).Return(nil)
			},
			statusCode: http.StatusNoContent,
		},
		"reload error": {
			rootURL: "/",
			method:  http.MethodPost,
			path:    "/api/v1/reload",
			setupMocks: func(_ *mock_server.MockStatusesLister,
				reloader *mock_server.MockReloader, logger *mock_server.MockLogger) {
				reloader.EXPECT().Reload(gomock.Any()).Return(errReload)
				logger.EXPECT().Warn("reloading domains: domains file is malformed")
			},
			statusCode: http.StatusInternalServerError,
			body:       `{"error":"domains file is malformed"}` + "\n",
		},
		"reload with setup failures": {
			rootURL: "/",
			method:  http.MethodPost,
			path:    "/api/v1/reload",
			setupMocks: func(_ *mock_server.MockStatusesLister,
				reloader *mock_server.MockReloader, logger *mock_server.MockLogger) {
				err := fmt.Errorf("applying domains: %w", errors.Join(
					fmt.Errorf("%w: for domain a.example.com: bad authentication", schedule.ErrSetupFailed),
					fmt.Errorf("%w: for domain b.example.com: hostname does not exist", schedule.ErrSetupFailed),
				))
				reloader.EXPECT().Reload(gomock.Any()).Return(err)
				logger.EXPECT().Warn(gomock.Any())
			},
			statusCode: http.StatusBadGateway,
			body: `{"error":"applying domains: setup failed: for domain a.example.com: bad authentication` +
				`\nsetup failed: for domain b.example.com: hostname does not exist",` +
				`"details":["setup failed: for domain a.example.com: bad authentication",` +
				`"setup failed: for domain b.example.com: hostname does not exist"]}` + "\n",
		},
		"not found": {
			rootURL: "/",
			method:  http.MethodGet,
			path:    "/api/v1/records",
			setupMocks: func(*mock_server.MockStatusesLister,
				*mock_server.MockReloader, *mock_server.MockLogger) {
			},
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			lister := mock_server.NewMockStatusesLister(ctrl)
			reloader := mock_server.NewMockReloader(ctrl)
			logger := mock_server.NewMockLogger(ctrl)
			testCase.setupMocks(lister, reloader, logger)

			handler := newHandler(testCase.rootURL, lister, reloader, buildInfo, logger)
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			request, err := http.NewRequest(testCase.method, server.URL+testCase.path, nil)
			require.NoError(t, err)
			if testCase.accept != "" {
				request.Header.Set("Accept", testCase.accept)
			}

			response, err := server.Client().Do(request)
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = response.Body.Close()
			})

			assert.Equal(t, testCase.statusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.body, string(b))
		})
	}
}
