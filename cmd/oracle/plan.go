package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/agent/core"
	srv "github.com/she-oracle/orchestrator/internal/server"
	"github.com/she-oracle/orchestrator/models"
)

// planCMD runs a single planning request from the terminal, streaming
// progress lines and printing the final plan as JSON.
func planCMD() *cobra.Command {
	var cfgPath string
	var goal string
	var domain string
	var sessionID string
	var plan = &cobra.Command{
		Use:   "plan",
		Short: "Run one planning request and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if goal == "" {
				return fmt.Errorf("--goal is required")
			}
			cfg := config.LoadConfig(cfgPath)
			rt, err := srv.BuildRuntime(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			var final *models.SynthesizedPlan
			for ev := range rt.Orchestrator.Run(cmd.Context(), core.RunRequest{
				SessionID: sessionID,
				Goal:      goal,
				Domain:    domain,
			}) {
				switch ev.Type {
				case models.EventResult:
					final = ev.Plan
				case models.EventError:
					return fmt.Errorf("run failed: %s", ev.Content)
				default:
					fmt.Fprintf(os.Stderr, "[%s] %s\n", ev.Type, ev.Content)
				}
			}
			if final == nil {
				return fmt.Errorf("run produced no plan")
			}

			out, err := json.MarshalIndent(final, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	plan.Flags().StringVar(&goal, "goal", "", "goal to plan for")
	plan.Flags().StringVar(&domain, "domain", "general", "goal domain (career, legal, financial, grants, education, general)")
	plan.Flags().StringVar(&sessionID, "session", "", "session id for memory continuity")
	plan.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return plan
}
