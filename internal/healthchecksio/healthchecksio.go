package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/qdm12/gdomains-updater/internal/events"
)

type Logger interface {
	Error(s string)
}

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string, logger Logger) *Client {
	return &Client{
		client: resty.NewWithClient(httpClient).SetBaseURL(baseURL),
		uuid:   uuid,
		logger: logger,
	}
}

type Client struct {
	client *resty.Client
	uuid   string
	logger Logger
}

var ErrStatusCode = errors.New("bad status code")

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

func (c *Client) Ping(ctx context.Context, state State) (err error) {
	if c.uuid == "" {
		return nil
	}

	path := "/" + c.uuid
	if state != Ok {
		path += "/" + string(state)
	}

	response, err := c.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrStatusCode, response.Status())
	}

	return nil
}

// HandleEvent pings healthchecks.io in the background each
// time a domain is updated.
func (c *Client) HandleEvent(event events.Event) {
	if c.uuid == "" || event.Name != events.DomainUpdated {
		return
	}

	go func() {
		const timeout = 10 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := c.Ping(ctx, Ok)
		if err != nil {
			c.logger.Error("pinging healthchecks.io: " + err.Error())
		}
	}()
}
