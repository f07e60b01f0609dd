package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

type Ziper struct {
	createFile func(name string) (*os.File, error)
	openFile   func(name string) (*os.File, error)
	ioCopy     func(dst io.Writer, src io.Reader) (written int64, err error)
}

func NewZiper() *Ziper {
	return &Ziper{
		createFile: os.Create,
		openFile:   os.Open,
		ioCopy:     io.Copy,
	}
}

// ZipFiles writes the input files at the root of a new zip
// archive at outputPath.
func (z *Ziper) ZipFiles(outputPath string, inputPaths ...string) (err error) {
	file, err := z.createFile(outputPath)
	if err != nil {
		return fmt.Errorf("creating zip file: %w", err)
	}

	writer := zip.NewWriter(file)
	for _, inputPath := range inputPaths {
		err = z.addFile(writer, inputPath)
		if err != nil {
			_ = writer.Close()
			_ = file.Close()
			return fmt.Errorf("adding %s: %w", inputPath, err)
		}
	}

	err = writer.Close()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("closing zip writer: %w", err)
	}
	return file.Close()
}

func (z *Ziper) addFile(writer *zip.Writer, inputPath string) (err error) {
	file, err := z.openFile(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Method = zip.Deflate

	entryWriter, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = z.ioCopy(entryWriter, file)
	return err
}
