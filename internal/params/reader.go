package params

import (
	"io/fs"
	"os"
)

type Reader struct {
	logger    Warner
	readFile  func(filename string) ([]byte, error)
	writeFile func(filename string, data []byte, perm fs.FileMode) (err error)
	mkdirAll  func(path string, perm fs.FileMode) error
}

func NewReader(logger Warner) *Reader {
	return &Reader{
		logger:    logger,
		readFile:  os.ReadFile,
		writeFile: os.WriteFile,
		mkdirAll:  os.MkdirAll,
	}
}

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Warner

type Warner interface {
	Warn(message string)
}
