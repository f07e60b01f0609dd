package config

import (
	"net"
	"time"

	"github.com/qdm12/gdomains-updater/internal/resolver"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Resolver configures the DNS check of the health server, verifying
// every running domain resolves to its last updated address.
type Resolver struct {
	Check *bool
	// Address is the nameserver queried. It defaults to the
	// first nameserver of the system.
	Address *string
	Timeout time.Duration
}

func (r *Resolver) setDefaults() {
	r.Check = gosettings.DefaultPointer(r.Check, true)
	r.Address = gosettings.DefaultPointer(r.Address, "")
	const defaultTimeout = 5 * time.Second
	r.Timeout = gosettings.DefaultComparable(r.Timeout, defaultTimeout)
}

func (r Resolver) Validate() (err error) {
	if !*r.Check {
		return nil
	}
	return r.Settings().Validate()
}

// Settings returns the settings to create the resolver with.
func (r Resolver) Settings() resolver.Settings {
	return resolver.Settings{
		Address: r.Address,
		Timeout: r.Timeout,
	}
}

func (r Resolver) String() string {
	return r.ToLinesNode().String()
}

func (r Resolver) ToLinesNode() *gotree.Node {
	if !*r.Check {
		return gotree.New("DNS check: disabled")
	}

	node := gotree.New("DNS check")
	nameserver := *r.Address
	if nameserver == "" {
		nameserver = "system nameserver"
	}
	node.Appendf("Nameserver: %s", nameserver)
	node.Appendf("Timeout: %s", r.Timeout)
	return node
}

func (r *Resolver) read(rd *reader.Reader) (err error) {
	r.Check, err = rd.BoolPtr("HEALTH_DNS_CHECK")
	if err != nil {
		return err
	}

	r.Address = rd.Get("RESOLVER_ADDRESS")
	if r.Address != nil && *r.Address != "" {
		_, _, splitErr := net.SplitHostPort(*r.Address)
		if splitErr != nil { // port 53 if not specified
			*r.Address = net.JoinHostPort(*r.Address, "53")
		}
	}

	r.Timeout, err = rd.Duration("RESOLVER_TIMEOUT")
	return err
}
