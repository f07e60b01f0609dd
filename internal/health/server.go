package health

import (
	"os"

	"github.com/qdm12/goservices/httpserver"
)

func NewServer(address string, logger Logger, healthcheck Checker) (
	server *httpserver.Server, err error) {
	name := "health"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(healthcheck),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}

// IsDocker returns true if the program runs in the Docker image,
// which ships an empty isdocker marker file next to the binary.
func IsDocker() (ok bool) {
	const markerPath = "isdocker"
	_, err := os.Stat(markerPath)
	return err == nil
}
