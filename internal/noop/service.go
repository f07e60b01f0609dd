package noop

import "context"

type Infoer interface {
	Info(s string)
}

// Service stands in for a service disabled by the settings,
// so it can be kept in the services sequence.
type Service struct {
	name   string
	logger Infoer
}

func New(name string, logger Infoer) *Service {
	return &Service{
		name:   name,
		logger: logger,
	}
}

func (s *Service) String() string {
	return s.name + " (disabled)"
}

func (s *Service) Start(_ context.Context) (_ <-chan error, _ error) {
	s.logger.Info(s.name + " is disabled")
	return nil, nil //nolint:nilnil
}

func (s *Service) Stop() (stopErr error) {
	return nil
}
