package server

import (
	"context"

	"github.com/qdm12/gdomains-updater/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . StatusesLister,Reloader,Logger

type StatusesLister interface {
	Statuses() (statuses []models.DomainStatus)
}

type Reloader interface {
	Reload(ctx context.Context) (err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
