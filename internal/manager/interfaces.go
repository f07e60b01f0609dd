package manager

import (
	"context"

	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/schedule"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Notifier,HistoryGetter,Logger

type Scheduler interface {
	Start(ctx context.Context, config models.UpdateConfig) (
		handle *schedule.Handle, err error)
}

type Notifier interface {
	Notify(message string)
}

type HistoryGetter interface {
	GetHistory(domain string) (history models.History)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
