package shoutrrr

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	Addresses    []string
	DefaultTitle string
	Logger       Erroer
}

func (s *Settings) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "Google Domains Updater")
	if s.Logger == nil {
		s.Logger = &noopLogger{}
	}
}

// Validate checks the addresses can be used to create a sender.
func (s Settings) Validate() (err error) {
	_, err = shoutrrr.CreateSender(s.Addresses...)
	if err != nil {
		return fmt.Errorf("shoutrrr addresses: %w", err)
	}
	return nil
}

func (s Settings) String() string {
	return s.toLinesNode().String()
}

func (s Settings) toLinesNode() *gotree.Node {
	node := gotree.New("Shoutrrr")
	if len(s.Addresses) == 0 {
		node.Appendf("Addresses: [none]")
		return node
	}

	childNode := node.Appendf("Addresses")
	for _, address := range s.Addresses {
		childNode.Appendf(address)
	}
	node.Appendf("Default title: %s", s.DefaultTitle)
	return node
}

type Erroer interface {
	Error(s string)
}

type noopLogger struct{}

func (l *noopLogger) Error(_ string) {}
