package health

import (
	"context"
	"net/netip"

	"github.com/qdm12/gdomains-updater/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . StatusesLister,AddressesLookuper

type StatusesLister interface {
	Statuses() (statuses []models.DomainStatus)
}

type AddressesLookuper interface {
	LookupAddresses(ctx context.Context, domain string) (addresses []netip.Addr, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
