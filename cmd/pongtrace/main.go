// pongtrace replays a scenario YAML file and writes the tick-by-tick trace.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/data"
	"github.com/l1jgo/pong/internal/replay"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: pongtrace <scenario.yaml> <trace.yaml>")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioPath, tracePath string) error {
	cfgPath := "config/pong.toml"
	if p := os.Getenv("PONG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	sc, err := data.LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	trace := replay.Run(sc, cfg.Rules(), log)
	if err := data.WriteTrace(tracePath, trace); err != nil {
		return err
	}

	last := trace.Ticks[len(trace.Ticks)-1]
	fmt.Printf("Wrote %d ticks to %s (score %d-%d)\n", len(trace.Ticks), tracePath, last.PlayerScore, last.OpponentScore)
	return nil
}
