package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Amr-9/vanityhunt/internal/config"
	"github.com/Amr-9/vanityhunt/internal/logx"
	"github.com/Amr-9/vanityhunt/internal/store"
	"github.com/Amr-9/vanityhunt/internal/ui"
	"github.com/Amr-9/vanityhunt/pkg/generator"
	"github.com/Amr-9/vanityhunt/pkg/generator/chains"
	"github.com/Amr-9/vanityhunt/pkg/generator/cpu"
)

// app holds what one invocation of the search command shares between searches.
type app struct {
	cfg   config.Config
	log   logx.Logger
	reg   *generator.Registry
	coord *cpu.Coordinator
	sinks store.MultiSink
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	err = cfg.Validate()
	interactive := errors.Is(err, config.ErrNoPattern)
	if err != nil && !interactive {
		return err
	}

	log := cfg.Logger()
	if err := raisePriority(); err != nil {
		log.Debug("could not raise process priority", "error", err)
	}

	reg := chains.Default()
	a := &app{
		cfg: cfg,
		log: log,
		reg: reg,
		coord: cpu.NewCoordinator(reg,
			cpu.WithWorkers(cfg.Workers),
			cpu.WithBatchSize(cfg.BatchSize),
			cpu.WithProgressInterval(cfg.ProgressInterval),
			cpu.WithLogger(log),
		),
	}

	ctx := cmd.Context()
	if a.sinks, err = openSinks(ctx, cfg); err != nil {
		return err
	}
	defer func() {
		if err := a.sinks.Close(); err != nil {
			log.Err(err)
		}
	}()

	base, err := cfg.SearchConfig()
	if err != nil {
		return err
	}

	ui.PrintWelcomeBanner(version)
	if !interactive {
		return a.search(ctx, base)
	}

	p := ui.NewPrompter(os.Stdin, os.Stdout, reg)
	for {
		sc, err := prompt(p, base)
		if err != nil {
			return err
		}
		if err := a.search(ctx, sc); err != nil {
			ui.PrintError(err)
		}
		if !p.AskToContinue() {
			return nil
		}
		fmt.Println()
	}
}

func prompt(p *ui.Prompter, base generator.SearchConfig) (generator.SearchConfig, error) {
	chain, err := p.SelectChain()
	if err != nil {
		return base, err
	}
	base.Chain = chain
	base.AddressType = generator.AddressTypeDefault
	if chain == generator.Bitcoin {
		if base.AddressType, err = p.SelectAddressType(); err != nil {
			return base, err
		}
	}
	return p.ReadTarget(base)
}

// openSinks builds the result sinks the configuration asks for.
func openSinks(ctx context.Context, cfg config.Config) (store.MultiSink, error) {
	var sinks store.MultiSink
	if cfg.Output != "" {
		sinks = append(sinks, store.NewFileSink(cfg.Output))
	}
	if cfg.PostgresDSN != "" {
		pg, err := store.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, pg)
	}
	return sinks, nil
}

// search runs one search to completion. Interrupts and the configured
// timeout end the search without ending the program.
func (a *app) search(parent context.Context, sc generator.SearchConfig) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	prepared, backend, err := a.reg.Prepare(sc)
	if err != nil {
		return err
	}
	difficulty := ui.Difficulty(prepared.Pattern, backend.Alphabet(prepared.AddressType), prepared.CaseSensitive)
	ui.PrintSearchInfo(prepared, backend.Lead(prepared.AddressType), a.coord.Workers(), difficulty)

	outcomes, err := a.coord.Start(ctx, prepared)
	if err != nil {
		return err
	}

	unsubscribe := func() {}
	progress, err := ui.StartProgress(difficulty)
	if err != nil {
		a.log.Warn("progress display unavailable", "error", err)
	} else {
		unsubscribe = a.coord.SubscribeProgress(progress.Update)
	}

	outcome := <-outcomes
	unsubscribe()
	if progress != nil {
		progress.Stop()
	}

	if outcome.Result == nil {
		if errors.Is(outcome.Err, generator.ErrStopped) {
			ui.PrintStopped(a.coord.Stats(), outcome.Err)
			return nil
		}
		return outcome.Err
	}

	result := *outcome.Result
	var saved []string
	if len(a.sinks) > 0 {
		// Saving must not be cut short by the interrupt that may follow.
		if err := a.sinks.Save(context.WithoutCancel(parent), result); err != nil {
			a.log.Err(err, "address", result.Candidate.Address)
		} else {
			saved = a.sinks.Locations()
		}
	}
	ui.PrintSuccess(result, saved)
	return nil
}
