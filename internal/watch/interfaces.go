package watch

import (
	"context"

	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/params"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DomainsReader,Applier,Logger

type DomainsReader interface {
	DomainConfigs(filePath string, defaults params.Defaults) (
		configs []models.UpdateConfig, warnings []string, err error)
}

type Applier interface {
	Apply(ctx context.Context, configs []models.UpdateConfig) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
