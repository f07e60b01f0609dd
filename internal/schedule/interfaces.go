package schedule

import (
	"context"
	"time"

	"github.com/qdm12/gdomains-updater/internal/gdomains"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Updater,Logger

type Updater interface {
	AttemptUpdate(ctx context.Context, domain, username, password string,
		timeout time.Duration) (outcome gdomains.Outcome)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
