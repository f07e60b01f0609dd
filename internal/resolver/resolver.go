package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client

type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}

// Resolver looks up the A and AAAA records of a domain
// against a single DNS server, bypassing any local cache.
type Resolver struct {
	client  Client
	address string
	timeout time.Duration
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.setDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	address := *settings.Address
	if address == "" {
		address = systemNameserver(settings.ResolvConfPath)
	}

	return &Resolver{
		client:  &dns.Client{Timeout: settings.Timeout},
		address: address,
		timeout: settings.Timeout,
	}, nil
}

func systemNameserver(resolvConfPath string) (address string) {
	config, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(config.Servers) == 0 {
		return "1.1.1.1:53"
	}
	return net.JoinHostPort(config.Servers[0], config.Port)
}

func (r *Resolver) String() string { return r.address }

var (
	ErrNoAddressFound  = errors.New("no address found")
	ErrRcodeNotSuccess = errors.New("response code is not success")
)

// LookupAddresses returns the IPv4 and IPv6 addresses of the domain.
// It only fails if both lookups fail, or if no address is found.
func (r *Resolver) LookupAddresses(ctx context.Context, domain string) (
	addresses []netip.Addr, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ipv4Addresses, errIPv4 := r.lookup(ctx, domain, dns.TypeA)
	ipv6Addresses, errIPv6 := r.lookup(ctx, domain, dns.TypeAAAA)
	if errIPv4 != nil && errIPv6 != nil {
		return nil, fmt.Errorf("looking up %s: %w", domain, errors.Join(errIPv4, errIPv6))
	}

	addresses = append(ipv4Addresses, ipv6Addresses...) //nolint:gocritic
	if len(addresses) == 0 {
		return nil, fmt.Errorf("%w: for %s", ErrNoAddressFound, domain)
	}
	return addresses, nil
}

func (r *Resolver) lookup(ctx context.Context, domain string, qType uint16) (
	addresses []netip.Addr, err error) {
	request := new(dns.Msg)
	request.SetQuestion(dns.Fqdn(domain), qType)

	response, _, err := r.client.ExchangeContext(ctx, request, r.address)
	if err != nil {
		return nil, fmt.Errorf("exchanging %s query: %w", dns.TypeToString[qType], err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: %s for %s query", ErrRcodeNotSuccess,
			dns.RcodeToString[response.Rcode], dns.TypeToString[qType])
	}

	for _, answer := range response.Answer {
		var ip net.IP
		switch record := answer.(type) {
		case *dns.A:
			ip = record.A
		case *dns.AAAA:
			ip = record.AAAA
		default:
			continue
		}
		address, ok := netip.AddrFromSlice(ip)
		if ok {
			addresses = append(addresses, address.Unmap())
		}
	}
	return addresses, nil
}
