package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Site struct {
	// URL is the canonical base URL of the site.
	URL string
	// CronDisabled is true if the site built-in scheduler
	// is disabled, for it to be triggered by system cron jobs.
	CronDisabled *bool
}

func (s *Site) setDefaults() {
	s.URL = gosettings.DefaultComparable(s.URL, "http://localhost")
	s.CronDisabled = gosettings.DefaultPointer(s.CronDisabled, false)
}

var (
	ErrSiteURLHostEmpty = errors.New("site URL host is empty")
)

func (s Site) Validate() (err error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("parsing site URL: %w", err)
	}

	err = validate.IsOneOf(u.Scheme, "http", "https")
	if err != nil {
		return fmt.Errorf("site URL scheme: %w", err)
	}

	if u.Hostname() == "" {
		return fmt.Errorf("%w: %s", ErrSiteURLHostEmpty, s.URL)
	}

	return nil
}

func (s Site) String() string {
	return s.toLinesNode().String()
}

func (s Site) toLinesNode() *gotree.Node {
	node := gotree.New("Site")
	node.Appendf("URL: %s", s.URL)
	node.Appendf("Built-in cron disabled: %s", gosettings.BoolToYesNo(s.CronDisabled))
	return node
}

func (s *Site) read(r *reader.Reader) (err error) {
	s.URL = r.String("SITE_URL", reader.ForceLowercase(false))
	s.CronDisabled, err = r.BoolPtr("DISABLE_WP_CRON")
	return err
}
