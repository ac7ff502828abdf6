package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/core/observability/log"
	"github.com/zeusync/cranesim/internal/crane"
	"github.com/zeusync/cranesim/internal/injector"
	"github.com/zeusync/cranesim/internal/script"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cranesim:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "engine config YAML; built-in defaults when empty")
	scenarioList := flag.String("scenario", "scenarios/demo.yaml", "comma separated scenario YAML files, each played on its own engine")
	levelName := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	level, err := log.ParseLevel(*levelName)
	if err != nil {
		return err
	}
	cfg, err := crane.LoadConfigFile(*configPath)
	if err != nil {
		return err
	}
	var scenarios []*script.Scenario
	for _, path := range strings.Split(*scenarioList, ",") {
		sc, err := script.LoadFile(strings.TrimSpace(path))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		scenarios = append(scenarios, sc)
	}

	logger := log.New(level).Named("cranesim")
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	done := make(chan struct{})
	g.Go(func() error {
		stopCh := make(chan os.Signal, 1)
		signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(stopCh)
		select {
		case sig := <-stopCh:
			logger.Info("stopping", log.String("signal", sig.String()))
			cancel()
		case <-done:
		}
		return nil
	})

	reports := make([]script.Report, len(scenarios))
	players := new(errgroup.Group)
	players.SetLimit(runtime.NumCPU())
	for i, sc := range scenarios {
		i, sc := i, sc
		players.Go(func() error {
			rep, err := play(ctx, cfg, sc, logger.With(log.String("scenario", sc.Name)))
			reports[i] = rep
			return err
		})
	}
	err = players.Wait()
	close(done)
	if werr := g.Wait(); werr != nil {
		err = errors.Join(err, werr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	for i, rep := range reports {
		name := scenarios[i].Name
		fmt.Printf("[%s] %s\n", name, rep.Final)
		fmt.Printf("[%s] ticks=%d commands=%d rejected=%d overloads=%d fingerprint=%016x\n",
			name, rep.Ticks, rep.Commands, rep.Rejected, rep.Overloads, rep.Fingerprint)
		fmt.Printf("[%s] events published=%d delivered=%d errors=%d\n",
			name, rep.Bus.Published, rep.Bus.DeliveredHandlers, rep.Bus.Errors)
		for _, st := range rep.Systems {
			fmt.Printf("[%s] system %s runs=%d avg=%s max=%s\n",
				name, st.Name, st.Metrics.ExecutionCount, st.Metrics.AverageExecutionTime(), st.Metrics.MaxExecutionTime)
		}
	}
	return nil
}

// play runs one scenario on a freshly wired engine, logging its events.
func play(ctx context.Context, cfg crane.Config, sc *script.Scenario, logger log.Log) (script.Report, error) {
	driver, err := injector.InitializeDriver(cfg, logger)
	if err != nil {
		return script.Report{}, err
	}

	events := driver.Engine().Bus()
	sub, err := events.Subscribe(bus.AllEvents, func(ev bus.Event) error {
		data, _ := ev.Data().(crane.EventData)
		logger.Debug("event",
			log.String("type", ev.Type()),
			log.Uint64("frame", data.Frame),
			log.Int("index", data.Index),
			log.Stringer("kind", data.Shape.Kind))
		return nil
	})
	if err != nil {
		return script.Report{}, err
	}
	defer func() { _ = events.Unsubscribe(sub) }()

	driver.OnTick = func(s crane.Snapshot) {
		logger.Debug("tick", log.Stringer("world", s))
	}
	return driver.Run(ctx, sc)
}
