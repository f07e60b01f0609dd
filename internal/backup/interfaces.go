package backup

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . FileZiper,Logger

type FileZiper interface {
	ZipFiles(outputPath string, inputPaths ...string) (err error)
}

type Logger interface {
	Info(s string)
	Error(s string)
}
