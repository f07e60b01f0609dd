package gdomains

import "github.com/qdm12/gdomains-updater/internal/events"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Notifier,Logger

type Notifier interface {
	Fire(event events.Event)
}

type DebugLogger interface {
	Debug(s string)
}

type Logger interface {
	DebugLogger
	Info(s string)
	Warn(s string)
	Error(s string)
}
