package config

import (
	"path/filepath"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	DataDir *string
	// Config is the domains file path,
	// defaulting to config.json in the data directory.
	Config *string
	Watch  *bool
}

func (p *Paths) setDefaults() {
	p.DataDir = gosettings.DefaultPointer(p.DataDir, "./data")
	defaultConfig := filepath.Join(*p.DataDir, "config.json")
	p.Config = gosettings.DefaultPointer(p.Config, defaultConfig)
	p.Watch = gosettings.DefaultPointer(p.Watch, true)
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Data directory: %s", *p.DataDir)
	node.Appendf("Config file: %s", *p.Config)
	node.Appendf("Watch config file: %s", gosettings.BoolToYesNo(p.Watch))
	return node
}

func (p *Paths) read(r *reader.Reader) (err error) {
	p.DataDir = r.Get("DATADIR", reader.ForceLowercase(false))
	p.Config = r.Get("CONFIG_FILEPATH", reader.ForceLowercase(false))
	p.Watch, err = r.BoolPtr("CONFIG_WATCH")
	return err
}
