package health

import (
	"context"
	"fmt"
)

// MakeIsHealthy returns a function checking the site host
// still resolves through the resolver given.
func MakeIsHealthy(siteHost string, resolver HostResolver,
	logger Logger) IsHealthyFunc {
	return func(ctx context.Context) (err error) {
		err = isHealthy(ctx, siteHost, resolver)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

func isHealthy(ctx context.Context, siteHost string, resolver HostResolver) (err error) {
	_, err = resolver.LookupIPv4(ctx, siteHost)
	if err != nil {
		return fmt.Errorf("resolving site host: %w", err)
	}
	return nil
}
