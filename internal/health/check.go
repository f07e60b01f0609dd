package health

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/gdomains-updater/internal/models"
)

func MakeIsHealthy(lister StatusesLister, resolver AddressesLookuper,
	logger Logger) Checker {
	return func(ctx context.Context) (err error) {
		err = isHealthy(ctx, lister, resolver)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

var (
	ErrSetupFailed     = errors.New("domain setup failed")
	ErrAddressMismatch = errors.New("looked up addresses do not contain the last updated address")
)

// isHealthy returns an error if any domain failed its setup, or if any
// running domain does not resolve to its last updated address.
// The DNS check is skipped if resolver is nil.
func isHealthy(ctx context.Context, lister StatusesLister,
	resolver AddressesLookuper) (err error) {
	for _, status := range lister.Statuses() {
		switch {
		case status.State == models.StateSetupFailed:
			return fmt.Errorf("%w: %s: %s", ErrSetupFailed, status.Domain, status.Message)
		case resolver == nil,
			status.State != models.StateRunning,
			!status.CurrentIP.IsValid():
			continue
		}

		addresses, err := resolver.LookupAddresses(ctx, status.Domain)
		if err != nil {
			return err
		}

		if !containsAddress(addresses, status.CurrentIP) {
			return fmt.Errorf("%w: %s resolves to %s instead of %s",
				ErrAddressMismatch, status.Domain, addressesString(addresses), status.CurrentIP)
		}
	}
	return nil
}

func containsAddress(addresses []netip.Addr, address netip.Addr) bool {
	for _, a := range addresses {
		if a == address {
			return true
		}
	}
	return false
}

func addressesString(addresses []netip.Addr) string {
	s := ""
	for i, address := range addresses {
		if i > 0 {
			s += ","
		}
		s += address.String()
	}
	return s
}
