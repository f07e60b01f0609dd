package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/schedule"
)

// Manager owns the schedule handle of every managed domain.
type Manager struct {
	scheduler Scheduler
	notifier  Notifier
	history   HistoryGetter
	logger    Logger
	pool      *ants.Pool
	initial   []models.UpdateConfig

	mutex   sync.RWMutex
	domains map[string]*entry
}

type entry struct {
	config      models.UpdateConfig
	cancelStart context.CancelFunc
	handle      *schedule.Handle
	status      models.DomainStatus
}

// New creates a manager bringing up at most concurrency domains
// at the same time. The initial configurations are applied when
// the manager is started as a service.
func New(scheduler Scheduler, notifier Notifier, history HistoryGetter,
	logger Logger, concurrency int, initial []models.UpdateConfig) (
	manager *Manager, err error) {
	pool, err := ants.NewPool(concurrency)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}

	return &Manager{
		scheduler: scheduler,
		notifier:  notifier,
		history:   history,
		logger:    logger,
		pool:      pool,
		initial:   initial,
		domains:   make(map[string]*entry),
	}, nil
}

var (
	ErrDomainAlreadyManaged = errors.New("domain is already managed")
	ErrDomainTornDown       = errors.New("domain was torn down during its setup")
)

// Setup starts the periodic updates of the domain. It blocks until
// the domain is running or its setup failed, in which case the domain
// stays listed in the setup failed state and the error is returned.
func (m *Manager) Setup(ctx context.Context, config models.UpdateConfig) (err error) {
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	startCtx, cancelStart := context.WithCancel(ctx)
	defer cancelStart()

	history := m.history.GetHistory(config.Domain)
	e := &entry{
		config:      config,
		cancelStart: cancelStart,
		status: models.DomainStatus{
			Domain:     config.Domain,
			State:      models.StateUnset,
			Interval:   config.Interval,
			CurrentIP:  history.GetCurrentIP(),
			LastUpdate: history.GetSuccessTime(),
		},
	}

	m.mutex.Lock()
	existing, ok := m.domains[config.Domain]
	if ok && existing.status.State != models.StateSetupFailed {
		m.mutex.Unlock()
		return fmt.Errorf("%w: %s", ErrDomainAlreadyManaged, config.Domain)
	}
	m.domains[config.Domain] = e
	m.mutex.Unlock()

	handle, startErr := m.scheduler.Start(startCtx, config)

	m.mutex.Lock()
	e.cancelStart = nil
	if m.domains[config.Domain] != e {
		m.mutex.Unlock()
		if handle != nil {
			handle.Stop()
		}
		return fmt.Errorf("%w: %s", ErrDomainTornDown, config.Domain)
	}
	defer m.mutex.Unlock()

	if startErr != nil {
		e.status.State = models.StateSetupFailed
		e.status.Message = startErr.Error()
		message := "setting up " + config.Domain + ": " + startErr.Error()
		m.logger.Error(message)
		m.notifier.Notify(message)
		return startErr
	}

	e.handle = handle
	e.status.State = models.StateRunning
	e.status.Message = ""
	return nil
}

// Teardown stops the periodic updates of the domain and forgets it.
// It does nothing if the domain is not managed.
func (m *Manager) Teardown(domain string) {
	m.mutex.Lock()
	e, ok := m.domains[domain]
	if !ok {
		m.mutex.Unlock()
		return
	}
	delete(m.domains, domain)
	cancelStart, handle := e.cancelStart, e.handle
	m.mutex.Unlock()

	if cancelStart != nil {
		cancelStart()
	}
	if handle != nil {
		handle.Stop()
		m.logger.Info("stopped updating " + domain)
	}
}

// Reconfigure stops the domain schedule and starts it again
// with the new configuration.
func (m *Manager) Reconfigure(ctx context.Context, config models.UpdateConfig) (err error) {
	m.Teardown(config.Domain)
	return m.Setup(ctx, config)
}

// Domains returns the configurations of all managed domains.
func (m *Manager) Domains() (configs map[string]models.UpdateConfig) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	configs = make(map[string]models.UpdateConfig, len(m.domains))
	for domain, e := range m.domains {
		configs[domain] = e.config
	}
	return configs
}
