package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/debug-cron/internal/checker"
	"github.com/qdm12/debug-cron/internal/config"
	"github.com/qdm12/debug-cron/internal/dnsrecord"
	"github.com/qdm12/debug-cron/internal/health"
	"github.com/qdm12/debug-cron/internal/hooks"
	"github.com/qdm12/debug-cron/internal/models"
	"github.com/qdm12/debug-cron/internal/probe"
	"github.com/qdm12/debug-cron/internal/resolver"
	"github.com/qdm12/debug-cron/internal/server"
	"github.com/qdm12/goservices"
	"github.com/qdm12/goservices/httpserver"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, os.Stdout, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as version, check or healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, stdout io.Writer,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Fprintln(stdout, buildInfo.VersionString())
			return nil
		case "check":
			// Run the checks once, as an admin page request would,
			// and print the resulting notices.
			config, err := readConfig(reader)
			if err != nil {
				return err
			}
			logger.Patch(config.Logger.ToOptions()...)

			hostResolver, err := resolver.New(config.Resolver)
			if err != nil {
				return fmt.Errorf("creating resolver: %w", err)
			}
			register := makeRegisterer(config, hostResolver, logger)

			err = server.RenderNotices(ctx, register, stdout)
			fmt.Fprintln(stdout)
			return err
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status

			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader)
	if err != nil {
		return err
	}
	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	hostResolver, err := resolver.New(config.Resolver)
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}

	register := makeRegisterer(config, hostResolver, logger)

	serverLogger := logger.New(log.SetComponent("admin server"))
	adminServer, err := server.New(config.Server.ListeningAddress,
		config.Server.RootURL, config.Site.URL, register, serverLogger)
	if err != nil {
		return fmt.Errorf("creating admin server: %w", err)
	}

	healthServer, err := createHealthServer(config, hostResolver, logger)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{healthServer, adminServer},
		ServicesStop:  []goservices.Service{adminServer, healthServer},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	select {
	case <-ctx.Done():
	case err = <-runError:
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		return fmt.Errorf("stopping failed: %w", err)
	}
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "debug-cron",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader) (config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}
	return config, nil
}

func makeRegisterer(config config.Config, hostResolver *resolver.Resolver,
	logger log.LoggerInterface) server.Registerer {
	prober := probe.New(probe.Settings{
		Timeout:   config.Probe.Timeout,
		Blocking:  config.Probe.Blocking,
		SSLVerify: config.Probe.SSLVerify,
		Logger:    logger.New(log.SetComponent("probe")),
	})

	settings := checker.Settings{
		SiteURL:      config.Site.URL,
		CronDisabled: *config.Site.CronDisabled,
		DNS:          dnsrecord.New(config.DNS.Nameserver, config.DNS.Timeout),
		Resolver:     hostResolver,
		Prober:       prober,
		Logger:       logger.New(log.SetComponent("checker")),
		TimeNow:      time.Now,
	}

	return func(dispatcher *hooks.Dispatcher) {
		checker.Register(dispatcher, settings)
	}
}

func createHealthServer(config config.Config, hostResolver *resolver.Resolver,
	logger log.LoggerInterface) (healthServer *httpserver.Server, err error) {
	siteURL, err := url.Parse(config.Site.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing site URL: %w", err)
	}
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	isHealthy := health.MakeIsHealthy(siteURL.Hostname(), hostResolver, healthLogger)
	return health.NewServer(config.Health.ServerAddress, healthLogger, isHealthy)
}
