package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/folresolve/internal/proof"
)

var (
	provePremises []string
	proveGoal     string
	proveFile     string
	proveTimeout  time.Duration
)

// scenario is the on-disk shape accepted by --file: a flat JSON
// object naming the premises and the goal, mirroring the scenario
// catalog the prover's original HTTP host served from disk.
type scenario struct {
	Premises []string `json:"premises"`
	Goal     string   `json:"goal"`
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Attempt to prove a goal from a set of premises",
	RunE: func(cmd *cobra.Command, args []string) error {
		premises, goal, err := loadScenario()
		if err != nil {
			return err
		}
		if goal == "" {
			return fmt.Errorf("no goal given: pass --goal or --file")
		}

		ctx := context.Background()
		if proveTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, proveTimeout)
			defer cancel()
		}

		logger.Info("starting proof attempt", zap.Int("premises", len(premises)), zap.String("goal", goal))

		result, err := proof.Run(ctx, premises, goal)
		if err != nil {
			logger.Warn("proof attempt did not finish in time", zap.String("goal", goal))
			return err
		}

		for _, line := range result.Log {
			fmt.Println(line)
		}
		if result.Proven {
			fmt.Println("ДОКАЗАНО: цель следует из посылок.")
		} else {
			fmt.Println("НЕ ДОКАЗАНО: насыщение достигнуто без пустого дизъюнкта.")
		}
		return nil
	},
}

func init() {
	proveCmd.Flags().StringArrayVar(&provePremises, "premise", nil, "a premise formula (repeatable)")
	proveCmd.Flags().StringVar(&proveGoal, "goal", "", "the goal formula to prove")
	proveCmd.Flags().StringVar(&proveFile, "file", "", "path to a JSON scenario file ({\"premises\": [...], \"goal\": \"...\"})")
	proveCmd.Flags().DurationVar(&proveTimeout, "timeout", 10*time.Second, "maximum time to search before giving up (0 disables the deadline)")
}

// loadScenario merges --file (if given) with --premise/--goal flags;
// explicit flags take precedence over the file's fields.
func loadScenario() (premises []string, goal string, err error) {
	if proveFile != "" {
		data, err := os.ReadFile(proveFile)
		if err != nil {
			return nil, "", fmt.Errorf("reading scenario file: %w", err)
		}
		var s scenario
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, "", fmt.Errorf("parsing scenario file: %w", err)
		}
		premises = s.Premises
		goal = s.Goal
	}

	if len(provePremises) > 0 {
		premises = provePremises
	}
	if proveGoal != "" {
		goal = proveGoal
	}
	return premises, goal, nil
}
