package config

import (
	"fmt"

	"github.com/qdm12/debug-cron/internal/resolver"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Site     Site
	Probe    Probe
	DNS      DNS
	Resolver resolver.Settings
	Server   Server
	Health   Health
	Logger   Logger
}

func (c *Config) SetDefaults() {
	c.Site.setDefaults()
	c.Probe.setDefaults()
	c.DNS.setDefaults()
	c.Resolver.SetDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"site":     &c.Site,
		"probe":    &c.Probe,
		"dns":      &c.DNS,
		"resolver": &c.Resolver,
		"server":   &c.Server,
		"health":   &c.Health,
		"logger":   &c.Logger,
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
	node.AppendNode(c.Site.toLinesNode())
	node.AppendNode(c.Probe.toLinesNode())
	node.AppendNode(c.DNS.toLinesNode())
	node.AppendNode(c.Resolver.ToLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	return node
}

func (c *Config) Read(r *reader.Reader) (err error) {
	err = c.Site.read(r)
	if err != nil {
		return fmt.Errorf("reading site settings: %w", err)
	}

	err = c.Probe.read(r)
	if err != nil {
		return fmt.Errorf("reading probe settings: %w", err)
	}

	err = c.DNS.read(r)
	if err != nil {
		return fmt.Errorf("reading DNS settings: %w", err)
	}

	err = readResolver(r, &c.Resolver)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	c.Server.read(r)
	c.Health.Read(r)

	err = c.Logger.read(r)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
