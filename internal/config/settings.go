package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Update   Update
	Resolver Resolver
	Server   Server
	Health   Health
	Paths    Paths
	Logger   Logger
	Shoutrrr Shoutrrr
	Backup   Backup
}

func (c *Config) SetDefaults() {
	c.Update.setDefaults()
	c.Resolver.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
	c.Backup.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"update":   &c.Update,
		"resolver": &c.Resolver,
		"server":   &c.Server,
		"health":   &c.Health,
		"paths":    &c.Paths,
		"logger":   &c.Logger,
		"shoutrrr": &c.Shoutrrr,
		"backup":   &c.Backup,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.Resolver.ToLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	node.AppendNode(c.Backup.toLinesNode())
	return node
}

func (c *Config) Read(r *reader.Reader) (err error) {
	err = c.Update.read(r)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	err = c.Resolver.read(r)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = c.Server.read(r)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(r)

	err = c.Paths.read(r)
	if err != nil {
		return fmt.Errorf("reading paths settings: %w", err)
	}

	err = c.Logger.read(r)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	err = c.Shoutrrr.read(r)
	if err != nil {
		return fmt.Errorf("reading shoutrrr settings: %w", err)
	}

	err = c.Backup.read(r)
	if err != nil {
		return fmt.Errorf("reading backup settings: %w", err)
	}

	return nil
}
