package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gdomains-updater/internal/backup"
	"github.com/qdm12/gdomains-updater/internal/config"
	"github.com/qdm12/gdomains-updater/internal/events"
	"github.com/qdm12/gdomains-updater/internal/gdomains"
	"github.com/qdm12/gdomains-updater/internal/health"
	"github.com/qdm12/gdomains-updater/internal/healthchecksio"
	"github.com/qdm12/gdomains-updater/internal/manager"
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/noop"
	"github.com/qdm12/gdomains-updater/internal/params"
	persistence "github.com/qdm12/gdomains-updater/internal/persistence/json"
	"github.com/qdm12/gdomains-updater/internal/resolver"
	"github.com/qdm12/gdomains-updater/internal/schedule"
	"github.com/qdm12/gdomains-updater/internal/server"
	"github.com/qdm12/gdomains-updater/internal/shoutrrr"
	"github.com/qdm12/gdomains-updater/internal/watch"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"golang.org/x/term"
	"k8s.io/utils/clock"
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
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
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

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.String())
			return nil
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
			return client.Query(ctx, *healthSettings.ServerAddress)
		case "update":
			return updateOnce(ctx, args[2:], logger)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := config.Shoutrrr.Settings(logger.New(log.SetComponent("shoutrrr")))
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	persistentDB, err := persistence.NewDatabase(*config.Paths.DataDir,
		logger.New(log.SetComponent("database")))
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}

	domainsReader := params.NewReader(logger)
	defaults := params.Defaults{
		Interval: config.Update.Interval,
		Timeout:  config.Update.Timeout,
	}
	initialConfigs, warnings, err := domainsReader.DomainConfigs(*config.Paths.Config, defaults)
	for _, w := range warnings {
		logger.Warn(w)
		shoutrrrClient.Notify(w)
	}
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}

	bus := events.NewBus()
	eventsLogger := logger.New(log.SetComponent("events"))
	bus.Subscribe(func(event events.Event) {
		eventsLogger.Debug(event.String())
	})
	bus.Subscribe(persistentDB.HandleEvent)
	if *config.Shoutrrr.NotifyUpdates {
		bus.Subscribe(shoutrrrClient.HandleEvent)
	}

	client := &http.Client{}
	defer client.CloseIdleConnections()

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID, logger.New(log.SetComponent("healthchecks.io")))
	bus.Subscribe(hioClient.HandleEvent)

	updater := gdomains.New(client, bus, logger.New(log.SetComponent("updater")))
	scheduler := schedule.New(updater, clock.RealClock{},
		logger.New(log.SetComponent("scheduler")))

	domainsManager, err := manager.New(scheduler, shoutrrrClient, persistentDB,
		logger.New(log.SetComponent("manager")), int(*config.Update.Concurrency),
		initialConfigs)
	if err != nil {
		return fmt.Errorf("creating domains manager: %w", err)
	}
	bus.Subscribe(domainsManager.HandleEvent)

	watcher := watch.New(*config.Paths.Config, defaults, domainsReader, domainsManager,
		logger.New(log.SetComponent("config watcher")))
	var watcherService goservices.Service = watcher
	if !*config.Paths.Watch {
		watcherService = noop.New("config watcher", logger)
	}

	var dnsChecker health.AddressesLookuper
	if *config.Resolver.Check {
		dnsChecker, err = resolver.New(config.Resolver.Settings())
		if err != nil {
			return fmt.Errorf("creating resolver: %w", err)
		}
	}

	healthServer, err := createHealthServer(domainsManager, dnsChecker, logger,
		*config.Health.ServerAddress)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	server, err := createServer(config.Server, logger, domainsManager, watcher, buildInfo)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	var backupService goservices.Service
	backupLogger := logger.New(log.SetComponent("backup"))
	backupService = backup.New(config.Backup.Period, *config.Backup.Directory,
		[]string{*config.Paths.Config, filepath.Join(*config.Paths.DataDir, "updates.json")},
		backup.NewZiper(), clock.RealClock{}, backupLogger)
	backupService, err = goservices.NewRestarter(goservices.RestarterSettings{Service: backupService})
	if err != nil {
		return fmt.Errorf("creating backup restarter: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{domainsManager, watcherService, healthServer, server, backupService},
		ServicesStop:  []goservices.Service{server, healthServer, watcherService, backupService, domainsManager},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	pingHealthchecksio(hioClient, logger, healthchecksio.Start)

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		pingHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.Notify("Launched with " + strconv.Itoa(len(initialConfigs)) + " domains to update")

	select {
	case <-ctx.Done():
	case err = <-runError:
		pingHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		pingHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	err = persistentDB.Close()
	if err != nil {
		pingHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		return fmt.Errorf("closing database: %w", err)
	}

	pingHealthchecksio(hioClient, logger, healthchecksio.Exit0)
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "gdomains-updater",
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

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

var ErrUpdateUsage = errors.New("usage: gdomains-updater update <domain> <username>")

// updateOnce performs a single update attempt for a domain, prompting
// for the password on the terminal.
func updateOnce(ctx context.Context, args []string, logger log.LoggerInterface) (err error) {
	const expectedArgs = 2
	if len(args) != expectedArgs {
		return fmt.Errorf("%w", ErrUpdateUsage)
	}
	domain, username := args[0], args[1]

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	updateConfig := models.UpdateConfig{
		Domain:   domain,
		Username: username,
		Password: string(password),
	}
	updateConfig.SetDefaults()
	err = updateConfig.Validate()
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	client := &http.Client{}
	defer client.CloseIdleConnections()
	updater := gdomains.New(client, events.NewBus(), logger)
	outcome := updater.AttemptUpdate(ctx, updateConfig.Domain,
		updateConfig.Username, updateConfig.Password, updateConfig.Timeout)
	if !outcome.Success {
		return outcome.Err
	}
	fmt.Println(updateConfig.Domain + " points to " + outcome.Address.String())
	return nil
}

func pingHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state)
	if err != nil {
		logger.Error(err.Error())
	}
}

//nolint:ireturn
func createHealthServer(lister health.StatusesLister, resolver health.AddressesLookuper,
	logger log.LoggerInterface, serverAddress string) (
	healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("health server", logger), nil
	}
	healthLogger := logger.New(log.SetComponent("health server"))
	isHealthy := health.MakeIsHealthy(lister, resolver, healthLogger)
	return health.NewServer(serverAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(config config.Server, logger log.LoggerInterface,
	lister server.StatusesLister, reloader server.Reloader,
	buildInfo models.BuildInformation) (
	service goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("server", logger), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(config.ListeningAddress, config.RootURL,
		lister, reloader, buildInfo, serverLogger)
}
