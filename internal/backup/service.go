package backup

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"k8s.io/utils/clock"
)

// Service periodically zips the domains file and the
// IP history file into the output directory.
type Service struct {
	// Injected fields
	period     time.Duration
	inputPaths []string
	outputDir  string
	ziper      FileZiper
	clock      clock.Clock
	logger     Logger

	// Internal fields
	stat   func(name string) (os.FileInfo, error)
	stopCh chan<- struct{}
	done   <-chan struct{}
}

func New(period time.Duration, outputDir string, inputPaths []string,
	ziper FileZiper, clk clock.Clock, logger Logger) *Service {
	return &Service{
		period:     period,
		inputPaths: inputPaths,
		outputDir:  outputDir,
		ziper:      ziper,
		clock:      clk,
		logger:     logger,
		stat:       os.Stat,
	}
}

func (s *Service) String() string {
	return "backup"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return nil, nil //nolint:nilnil
}

func (s *Service) run(ready chan<- struct{}, stopCh <-chan struct{},
	done chan<- struct{}) {
	defer close(done)

	if s.period == 0 {
		close(ready)
		s.logger.Info("disabled")
		return
	}

	s.logger.Info("each " + s.period.String() +
		"; writing zip files to directory " + s.outputDir)
	timer := s.clock.NewTimer(s.period)
	close(ready)

	for {
		select {
		case <-timer.C():
		case <-stopCh:
			_ = timer.Stop()
			return
		}

		err := s.backup()
		if err != nil {
			s.logger.Error(err.Error())
		}
		timer.Reset(s.period)
	}
}

func (s *Service) backup() (err error) {
	existing := make([]string, 0, len(s.inputPaths))
	for _, inputPath := range s.inputPaths {
		_, err = s.stat(inputPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return err
		}
		existing = append(existing, inputPath)
	}

	if len(existing) == 0 {
		return nil
	}

	outputPath := filepath.Join(s.outputDir, makeZipFileName(s.clock.Now()))
	return s.ziper.ZipFiles(outputPath, existing...)
}

func makeZipFileName(now time.Time) string {
	return "gdomains-updater-backup-" + strconv.FormatInt(now.UnixNano(), 10) + ".zip"
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}
