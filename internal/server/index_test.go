package server

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/server/mock_server"
	"github.com/stretchr/testify/assert"
)

func Test_handlers_index(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	now := time.Date(2023, 1, 1, 2, 0, 0, 0, time.UTC)
	lister := mock_server.NewMockStatusesLister(ctrl)
	lister.EXPECT().Statuses().Return([]models.DomainStatus{
		{
			Domain:  "z.example.com",
			State:   models.StateSetupFailed,
			Message: "bad <authentication>",
		},
		{
			Domain:     "a.example.com",
			State:      models.StateRunning,
			Interval:   time.Hour,
			CurrentIP:  netip.MustParseAddr("203.0.113.7"),
			LastUpdate: now.Add(-90 * time.Minute),
		},
	})

	h := &handlers{
		lister:  lister,
		timeNow: func() time.Time { return now },
	}

	recorder := httptest.NewRecorder()
	h.index(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	body := recorder.Body.String()
	assert.Contains(t, body, "<p>1 of 2 domains running</p>")
	assert.Contains(t, body, `<a href="https://ipinfo.io/203.0.113.7">203.0.113.7</a>`)
	assert.Contains(t, body, "<td>1 hrs ago</td>")
	assert.Contains(t, body, `<span class="error" title="bad &lt;authentication&gt;">setup failed</span>`)
	assert.Less(t, strings.Index(body, "a.example.com"), strings.Index(body, "z.example.com"))
}

func Test_timeSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	testCases := map[string]struct {
		t        time.Time
		expected string
	}{
		"zero time": {
			expected: "N/A",
		},
		"seconds": {
			t:        now.Add(-30 * time.Second),
			expected: "just now",
		},
		"minutes": {
			t:        now.Add(-5 * time.Minute),
			expected: "5 min ago",
		},
		"hours": {
			t:        now.Add(-3 * time.Hour),
			expected: "3 hrs ago",
		},
		"days": {
			t:        now.Add(-50 * time.Hour),
			expected: "2 days ago",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, timeSince(now, testCase.t))
		})
	}
}
