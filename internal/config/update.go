package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Update contains the defaults applied to domains
// not specifying their own interval or timeout.
type Update struct {
	Interval    time.Duration
	Timeout     time.Duration
	Concurrency *uint16
}

func (u *Update) setDefaults() {
	u.Interval = gosettings.DefaultComparable(u.Interval, models.DefaultInterval)
	u.Timeout = gosettings.DefaultComparable(u.Timeout, models.DefaultTimeout)
	const defaultConcurrency = 4
	u.Concurrency = gosettings.DefaultPointer(u.Concurrency, defaultConcurrency)
}

var (
	ErrIntervalTooLow    = errors.New("interval is too low")
	ErrTimeoutTooLow     = errors.New("timeout is too low")
	ErrConcurrencyIsZero = errors.New("concurrency cannot be zero")
)

func (u Update) Validate() (err error) {
	const minInterval = time.Minute
	if u.Interval < minInterval {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrIntervalTooLow, u.Interval, minInterval)
	}

	const minTimeout = time.Second
	if u.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, u.Timeout, minTimeout)
	}

	if *u.Concurrency == 0 {
		return fmt.Errorf("%w", ErrConcurrencyIsZero)
	}

	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	node.Appendf("Default interval: %s", u.Interval)
	node.Appendf("Default timeout: %s", u.Timeout)
	node.Appendf("Concurrent setups: %d", *u.Concurrency)
	return node
}

func (u *Update) read(r *reader.Reader) (err error) {
	u.Interval, err = r.Duration("UPDATE_INTERVAL")
	if err != nil {
		return err
	}

	u.Timeout, err = r.Duration("UPDATE_TIMEOUT")
	if err != nil {
		return err
	}

	u.Concurrency, err = r.Uint16Ptr("UPDATE_CONCURRENCY")
	return err
}
