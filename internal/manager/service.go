package manager

import (
	"context"
	"fmt"
	"strconv"
)

func (m *Manager) String() string {
	return "domains manager"
}

// Start sets up the initial domains. Setup failures are
// not fatal and only reported through the domain statuses.
func (m *Manager) Start(ctx context.Context) (runError <-chan error, err error) {
	switch len(m.initial) {
	case 0:
		m.logger.Warn("no domain to update")
	case 1:
		m.logger.Info("setting up 1 domain")
	default:
		m.logger.Info("setting up " + strconv.Itoa(len(m.initial)) + " domains")
	}

	err = m.Apply(ctx, m.initial)
	if err != nil {
		m.logger.Warn(fmt.Sprintf("some domains failed their setup: %s", err))
	}
	m.initial = nil
	return nil, nil //nolint:nilnil
}

// Stop tears down all managed domains.
func (m *Manager) Stop() (err error) {
	for domain := range m.Domains() {
		m.Teardown(domain)
	}
	m.pool.Release()
	return nil
}
