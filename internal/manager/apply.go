package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/qdm12/gdomains-updater/internal/models"
)

// Apply makes the managed domains match the configurations given:
// domains no longer present are torn down, changed domains are
// reconfigured and new domains are set up. Domains which previously
// failed their setup are set up again. Setups run concurrently and
// all their errors are returned joined together.
func (m *Manager) Apply(ctx context.Context, configs []models.UpdateConfig) (err error) {
	wanted := make(map[string]models.UpdateConfig, len(configs))
	for _, config := range configs {
		config.SetDefaults()
		wanted[config.Domain] = config
	}

	type change struct {
		config      models.UpdateConfig
		reconfigure bool
	}

	m.mutex.RLock()
	var removed []string
	var changes []change
	for domain, e := range m.domains {
		config, ok := wanted[domain]
		if !ok {
			removed = append(removed, domain)
			continue
		}
		if config != e.config || e.status.State == models.StateSetupFailed {
			changes = append(changes, change{config: config, reconfigure: true})
		}
		delete(wanted, domain)
	}
	m.mutex.RUnlock()
	for _, config := range wanted {
		changes = append(changes, change{config: config})
	}

	for _, domain := range removed {
		m.Teardown(domain)
	}

	errs := make([]error, len(changes))
	var wg sync.WaitGroup
	for i, c := range changes {
		i, c := i, c
		wg.Add(1)
		err = m.pool.Submit(func() {
			defer wg.Done()
			if c.reconfigure {
				errs[i] = m.Reconfigure(ctx, c.config)
			} else {
				errs[i] = m.Setup(ctx, c.config)
			}
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submitting setup of %s: %w", c.config.Domain, err)
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}
