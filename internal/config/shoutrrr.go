package config

import (
	"fmt"

	"github.com/qdm12/gdomains-updater/internal/shoutrrr"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Shoutrrr configures notifications. Setup failures are always
// notified, and IP address changes only if NotifyUpdates is enabled.
type Shoutrrr struct {
	Addresses     []string
	DefaultTitle  string
	NotifyUpdates *bool
}

func (s *Shoutrrr) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "Google Domains Updater")
	s.NotifyUpdates = gosettings.DefaultPointer(s.NotifyUpdates, true)
}

func (s Shoutrrr) Validate() (err error) {
	settings := s.Settings(nil)
	err = settings.Validate()
	if err != nil {
		return fmt.Errorf("notifications: %w", err)
	}
	return nil
}

// Settings returns the settings to create the shoutrrr client with.
func (s Shoutrrr) Settings(logger shoutrrr.Erroer) shoutrrr.Settings {
	return shoutrrr.Settings{
		Addresses:    s.Addresses,
		DefaultTitle: s.DefaultTitle,
		Logger:       logger,
	}
}

func (s Shoutrrr) String() string {
	return s.ToLinesNode().String()
}

func (s Shoutrrr) ToLinesNode() *gotree.Node {
	if len(s.Addresses) == 0 {
		return gotree.New("Shoutrrr: disabled")
	}

	node := gotree.New("Shoutrrr")
	node.Appendf("Default title: %s", s.DefaultTitle)
	node.Appendf("Notify IP updates: %s", gosettings.BoolToYesNo(s.NotifyUpdates))

	servicesNode := node.Appendf("Services")
	for _, address := range s.Addresses {
		servicesNode.Appendf(shoutrrr.ServiceName(address))
	}

	return node
}

func (s *Shoutrrr) read(r *reader.Reader) (err error) {
	s.Addresses = r.CSV("SHOUTRRR_ADDRESSES", reader.ForceLowercase(false))
	s.DefaultTitle = r.String("SHOUTRRR_DEFAULT_TITLE", reader.ForceLowercase(false))
	s.NotifyUpdates, err = r.BoolPtr("SHOUTRRR_NOTIFY_UPDATES")
	return err
}
