package probe

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// QueryKey is the query parameter the scheduler sets when
	// invoking its own endpoint.
	QueryKey = "doing_wp_cron"
	// EndpointPath is the scheduler endpoint path relative to the site URL.
	EndpointPath = "wp-cron.php"
)

// CronURL returns the scheduler endpoint URL of the site with the
// doing_wp_cron query parameter set to the Unix timestamp of now,
// formatted with 22 decimals.
func CronURL(siteURL string, now time.Time) (cronURL string, err error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("parsing site URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + EndpointPath
	u.RawPath = ""

	values := u.Query()
	values.Set(QueryKey, FormatTimestamp(now))
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// FormatTimestamp formats the time as fractional Unix seconds
// with 22 digits after the decimal point.
func FormatTimestamp(t time.Time) string {
	const nanosecondsPerSecond = 1e9
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/nanosecondsPerSecond
	const decimals, bitSize = 22, 64
	return strconv.FormatFloat(seconds, 'f', decimals, bitSize)
}
