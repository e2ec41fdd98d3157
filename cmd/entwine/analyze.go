package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spiritatlas/entwine/internal/engine"
	"github.com/spiritatlas/entwine/internal/export"
	"github.com/spiritatlas/entwine/internal/model"
)

func analyzeCmd() *cobra.Command {
	var (
		withAI bool
		depth  string
		share  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <profile-a-id> <profile-b-id>",
		Short: "Analyze the compatibility of two profiles",
		Long: `Run the full analysis pipeline for a pair of profiles: the six
dimension scores, insights, strengths, challenges, recommendations and
action plan. With --ai, the report is additionally enriched with
AI-generated narrative insights; if the provider fails, the rule-based
report is still produced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch model.AnalysisDepth(depth) {
			case model.DepthQuick, model.DepthStandard, model.DepthComprehensive:
			default:
				return fmt.Errorf("invalid depth %q (want quick, standard, or comprehensive)", depth)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			eng, cleanup, err := initEngine(store, withAI)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := eng.Analyze(ctx, args[0], args[1], engine.Options{
				IncludeAI: withAI,
				Depth:     model.AnalysisDepth(depth),
			})
			if err != nil {
				return err
			}

			if share {
				fmt.Print(export.PlainText(report))
			} else {
				fmt.Print(export.Render(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withAI, "ai", false, "enrich the report with AI-generated insights")
	cmd.Flags().StringVar(&depth, "depth", string(model.DepthStandard), "AI analysis depth (quick, standard, comprehensive)")
	cmd.Flags().BoolVar(&share, "share", false, "print a plain-text shareable summary instead of the styled report")

	return cmd
}
