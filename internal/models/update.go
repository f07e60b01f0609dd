package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

const (
	DefaultInterval = 60 * time.Minute
	DefaultTimeout  = 10 * time.Second
)

// UpdateConfig contains everything needed to keep a single
// managed domain pointing to the current public IP address.
// It is treated as an immutable value: a change of any field
// requires the domain schedule to be stopped and started again.
type UpdateConfig struct {
	Domain   string
	Username string
	Password string
	Interval time.Duration
	Timeout  time.Duration
}

func (u *UpdateConfig) SetDefaults() {
	u.Interval = gosettings.DefaultComparable(u.Interval, DefaultInterval)
	u.Timeout = gosettings.DefaultComparable(u.Timeout, DefaultTimeout)
}

var (
	ErrDomainEmpty     = errors.New("domain is empty")
	ErrDomainMalformed = errors.New("domain is malformed")
	ErrUsernameEmpty   = errors.New("username is empty")
	ErrPasswordEmpty   = errors.New("password is empty")
	ErrIntervalTooLow  = errors.New("interval is too low")
	ErrTimeoutTooLow   = errors.New("timeout is too low")
)

func (u UpdateConfig) Validate() (err error) {
	switch {
	case u.Domain == "":
		return fmt.Errorf("%w", ErrDomainEmpty)
	case u.Username == "":
		return fmt.Errorf("%w: for domain %s", ErrUsernameEmpty, u.Domain)
	case u.Password == "":
		return fmt.Errorf("%w: for domain %s", ErrPasswordEmpty, u.Domain)
	}

	_, ok := dns.IsDomainName(u.Domain)
	if !ok {
		return fmt.Errorf("%w: %s", ErrDomainMalformed, u.Domain)
	}

	const minInterval = time.Minute
	if u.Interval < minInterval {
		return fmt.Errorf("%w: %s is below the minimum %s for domain %s",
			ErrIntervalTooLow, u.Interval, minInterval, u.Domain)
	}

	const minTimeout = time.Second
	if u.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s for domain %s",
			ErrTimeoutTooLow, u.Timeout, minTimeout, u.Domain)
	}

	return nil
}

func (u UpdateConfig) String() string {
	return u.ToLinesNode().String()
}

func (u UpdateConfig) ToLinesNode() *gotree.Node {
	node := gotree.New("Domain %s", u.Domain)
	node.Appendf("Username: %s", u.Username)
	node.Appendf("Password: [set]")
	node.Appendf("Interval: %s", u.Interval)
	node.Appendf("Timeout: %s", u.Timeout)
	return node
}
