package backup

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gdomains-updater/internal/backup/mock_backup"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func Test_Service(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	fakeClock := testingclock.NewFakeClock(time.Unix(0, 1700000000000000000))
	ziper := mock_backup.NewMockFileZiper(ctrl)
	logger := mock_backup.NewMockLogger(ctrl)

	logger.EXPECT().Info("each 1h0m0s; writing zip files to directory /backups")
	zipped := make(chan struct{})
	ziper.EXPECT().
		ZipFiles("/backups/gdomains-updater-backup-1700003600000000000.zip", "/data/config.json").
		DoAndReturn(func(string, ...string) error {
			close(zipped)
			return nil
		})

	service := New(time.Hour, "/backups",
		[]string{"/data/config.json", "/data/updates.json"},
		ziper, fakeClock, logger)
	service.stat = func(name string) (os.FileInfo, error) {
		if name == "/data/updates.json" {
			return nil, os.ErrNotExist
		}
		return nil, nil //nolint:nilnil
	}

	_, err := service.Start(context.Background())
	require.NoError(t, err)

	fakeClock.Step(time.Hour)
	select {
	case <-zipped:
	case <-time.After(time.Second):
		t.Fatal("backup not written")
	}

	err = service.Stop()
	require.NoError(t, err)
}

func Test_Service_disabled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	logger := mock_backup.NewMockLogger(ctrl)
	logger.EXPECT().Info("disabled")

	service := New(0, "/backups", nil, nil, testingclock.NewFakeClock(time.Now()), logger)

	_, err := service.Start(context.Background())
	require.NoError(t, err)

	err = service.Stop()
	require.NoError(t, err)
}
