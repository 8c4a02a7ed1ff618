package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"inward/internal/bootstrap"
	checkindto "inward/internal/modules/checkin/dto"
	insightsdomain "inward/internal/modules/insights/domain"
	journeydto "inward/internal/modules/journey/dto"
	plugindto "inward/internal/modules/plugin/dto"
	profiledomain "inward/internal/modules/profile/domain"
	"inward/internal/platform/config"
	"inward/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "inward",
		Short:         "Guided self-reflection: the 5 rules, check-ins, and insights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose diagnostics on stderr")

	root.AddCommand(newTUICmd(&dataPath, &verbose))
	root.AddCommand(newJourneyCmd(&dataPath, &verbose))
	root.AddCommand(newCheckInCmd(&dataPath, &verbose))
	root.AddCommand(newInsightsCmd(&dataPath, &verbose))
	root.AddCommand(newProfileCmd(&dataPath, &verbose))
	root.AddCommand(newOnboardingCmd(&dataPath, &verbose))
	root.AddCommand(newExportCmd(&dataPath, &verbose))
	root.AddCommand(newClearCmd(&dataPath, &verbose))
	root.AddCommand(newReindexCmd(&dataPath, &verbose))
	root.AddCommand(newPluginCmd(&dataPath, &verbose))
	return root
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inward"
	}
	return filepath.Join(home, ".inward")
}

// withApp wires the app, runs fn, and always flushes the debounced journey
// write before the process exits.
func withApp(dataPath string, verbose bool, fn func(*bootstrap.App) error) error {
	cfg, err := config.New(dataPath)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg, logging.New(verbose))
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func newTUICmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the inward terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, bootstrap.RunTUI)
		},
	}
}

func newJourneyCmd(dataPath *string, verbose *bool) *cobra.Command {
	journey := &cobra.Command{Use: "journey", Short: "The 5 Rules guided journey"}

	journey.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start a journey (no-op when one is already in progress)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.JourneyCLI.StartNew(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journey %s started at %s\n", out.ID, out.StartedAt.Format(time.RFC3339))
				return nil
			})
		},
	})

	journey.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current journey",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.JourneyCLI.Current(context.Background())
				if err != nil {
					return err
				}
				printJourney(cmd, out)
				return nil
			})
		},
	})

	var rule, field, value string
	var slot int
	answer := &cobra.Command{
		Use:   "answer --rule <rule1..rule5> --field <name> --value <text>",
		Short: "Record one answer on the current journey",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rule) == "" || strings.TrimSpace(field) == "" {
				return fmt.Errorf("--rule and --field are required")
			}
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.JourneyCLI.Answer(context.Background(), rule, field, value, slot); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "answer saved")
				return nil
			})
		},
	}
	answer.Flags().StringVar(&rule, "rule", "", "rule key: rule1..rule5")
	answer.Flags().StringVar(&field, "field", "", "field name within the rule")
	answer.Flags().StringVar(&value, "value", "", "answer text")
	answer.Flags().IntVar(&slot, "slot", -1, "rule-4 slot index 0..4 (scalar fields ignore it)")
	journey.AddCommand(answer)

	var completeRule int
	complete := &cobra.Command{
		Use:   "complete --rule <1..5>",
		Short: "Mark a rule complete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.JourneyCLI.Complete(context.Background(), completeRule)
				if err != nil {
					return err
				}
				if out.Complete {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journey complete at %s\n", out.CompletedAt.Format(time.RFC3339))
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rule %d complete (%d/5)\n", completeRule, len(out.CompletedRules))
				}
				return nil
			})
		},
	}
	complete.Flags().IntVar(&completeRule, "rule", 0, "rule number 1..5")
	journey.AddCommand(complete)

	journey.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear the current journey's answers, keeping its identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.JourneyCLI.Reset(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "journey reset")
				return nil
			})
		},
	})

	journey.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Archive the current journey and start a fresh one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.JourneyCLI.Archive(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %s\n", out.ID)
				return nil
			})
		},
	})

	journey.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List archived journeys, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				history, err := app.JourneyCLI.History(context.Background())
				if err != nil {
					return err
				}
				if len(history) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no archived journeys")
					return nil
				}
				for _, j := range history {
					marker := " "
					if j.Complete {
						marker = "✓"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", marker, j.ID, j.StartedAt.Format("2006-01-02"), strings.Join(j.Themes, ", "))
				}
				return nil
			})
		},
	})

	journey.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "Show the current journey's themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				themes, err := app.JourneyCLI.Themes(context.Background())
				if err != nil {
					return err
				}
				for _, t := range themes {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			})
		},
	})

	journey.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Export the current journey as plain text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				payload, err := app.JourneyCLI.Export(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			})
		},
	})

	return journey
}

func printJourney(cmd *cobra.Command, out journeydto.JourneyOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nstarted: %s\nupdated: %s\n", out.ID, out.StartedAt.Format(time.RFC3339), out.LastUpdatedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rules complete: %d/5\n", len(out.CompletedRules))
	if out.CompletedAt != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed: %s\n", out.CompletedAt.Format(time.RFC3339))
	}
	if len(out.Themes) > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "themes: %s\n", strings.Join(out.Themes, ", "))
	}
	if out.NotePath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note: %s\n", out.NotePath)
	}
}

func newCheckInCmd(dataPath *string, verbose *bool) *cobra.Command {
	checkin := &cobra.Command{Use: "checkin", Short: "Emotional check-ins"}

	var input checkindto.CheckInInput
	add := &cobra.Command{
		Use:   "add --emotion <name> --intensity <1..10>",
		Short: "Log a check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(input.Primary) == "" {
				return fmt.Errorf("--emotion is required")
			}
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.CheckInCLI.Add(context.Background(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s at %s\n", out.ID, out.Timestamp.Format(time.RFC3339))
				return nil
			})
		},
	}
	add.Flags().StringVar(&input.Primary, "emotion", "", "primary emotion")
	add.Flags().StringVar(&input.Secondary, "secondary", "", "secondary emotion")
	add.Flags().IntVar(&input.Intensity, "intensity", 5, "intensity 1..10")
	add.Flags().StringVar(&input.BodyLocation, "body", "", "where it shows up in the body")
	add.Flags().StringVar(&input.Thought, "thought", "", "the thought that came with it")
	add.Flags().StringSliceVar(&input.ThoughtTags, "tags", nil, "thought pattern tags")
	add.Flags().StringVar(&input.BehaviourUrge, "urge", "", "what you felt like doing")
	add.Flags().StringVar(&input.BehaviourAction, "action", "", "what you actually did")
	add.Flags().StringVar(&input.Value, "value", "", "the value at play")
	add.Flags().StringVar(&input.Context, "context", "", "optional context note")
	checkin.AddCommand(add)

	checkin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List check-ins, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				checkIns, err := app.CheckInCLI.List(context.Background())
				if err != nil {
					return err
				}
				if len(checkIns) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no check-ins")
					return nil
				}
				for _, c := range checkIns {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s(%d)\t%s\n", c.ID, c.Timestamp.Format("2006-01-02 15:04"), c.Emotion.Primary, c.Emotion.Intensity, c.Thought)
				}
				return nil
			})
		},
	})

	checkin.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Show today's most recent check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				c, ok, err := app.CheckInCLI.Today(context.Background())
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no check-in today")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s(%d)\t%s\n", c.ID, c.Timestamp.Format("15:04"), c.Emotion.Primary, c.Emotion.Intensity, c.Thought)
				return nil
			})
		},
	})

	var lastDays int
	last := &cobra.Command{
		Use:   "last --days <n>",
		Short: "List check-ins from the last n days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				checkIns, err := app.CheckInCLI.LastDays(context.Background(), lastDays)
				if err != nil {
					return err
				}
				for _, c := range checkIns {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s(%d)\n", c.ID, c.Timestamp.Format("2006-01-02 15:04"), c.Emotion.Primary, c.Emotion.Intensity)
				}
				return nil
			})
		},
	}
	last.Flags().IntVar(&lastDays, "days", 7, "window in days")
	checkin.AddCommand(last)

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.CheckInCLI.Delete(context.Background(), deleteID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted")
				return nil
			})
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "check-in id")
	checkin.AddCommand(deleteCmd)

	stats := &cobra.Command{Use: "stats", Short: "Aggregates from the check-in index"}
	stats.AddCommand(&cobra.Command{
		Use:   "emotions",
		Short: "Count check-ins per primary emotion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				counts, err := app.CheckInCLI.EmotionCounts(context.Background())
				if err != nil {
					return err
				}
				for _, c := range counts {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c.Emotion, c.Count)
				}
				return nil
			})
		},
	})
	var statDays int
	daily := &cobra.Command{
		Use:   "daily --days <n>",
		Short: "Count check-ins per local calendar day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				counts, err := app.CheckInCLI.DailyCounts(context.Background(), statDays)
				if err != nil {
					return err
				}
				for _, c := range counts {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c.Day, c.Count)
				}
				return nil
			})
		},
	}
	daily.Flags().IntVar(&statDays, "days", 7, "window in days")
	stats.AddCommand(daily)
	checkin.AddCommand(stats)

	return checkin
}

func newInsightsCmd(dataPath *string, verbose *bool) *cobra.Command {
	insights := &cobra.Command{Use: "insights", Short: "Reports, patterns, and narratives"}

	var reportDays int
	report := &cobra.Command{
		Use:   "report --days <n>",
		Short: "Frequency report over a window of days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.InsightsCLI.Report(context.Background(), reportDays)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d check-ins in %d days, alignment %d%%\n", out.CheckInCount, out.Days, out.AlignmentScore)
				for _, section := range []struct {
					label string
					rows  []string
				}{
					{"emotions", frequencyRows(out.Emotions)},
					{"thought tags", frequencyRows(out.ThoughtTags)},
					{"behaviours", frequencyRows(out.Behaviours)},
				} {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), section.label+":")
					for _, row := range section.rows {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  "+row)
					}
				}
				return nil
			})
		},
	}
	report.Flags().IntVar(&reportDays, "days", 7, "window in days")
	insights.AddCommand(report)

	insights.AddCommand(&cobra.Command{
		Use:   "patterns",
		Short: "Show the detected pattern snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				patterns, err := app.InsightsCLI.Patterns(context.Background())
				if err != nil {
					return err
				}
				if len(patterns) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no patterns detected yet")
					return nil
				}
				for _, p := range patterns {
					tested := " "
					if p.Tested {
						tested = "✓"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s (x%d)\n", tested, p.ID, p.Description, p.Frequency)
				}
				return nil
			})
		},
	})

	insights.AddCommand(&cobra.Command{
		Use:   "detect",
		Short: "Recompute patterns from all check-ins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				patterns, err := app.InsightsCLI.DetectPatterns(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "detected %d patterns\n", len(patterns))
				return nil
			})
		},
	})

	var testID string
	test := &cobra.Command{
		Use:   "test --id <pattern-id>",
		Short: "Mark a pattern hypothesis as tested",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(testID) == "" {
				return fmt.Errorf("--id is required")
			}
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.InsightsCLI.MarkPatternTested(context.Background(), testID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "marked tested")
				return nil
			})
		},
	}
	test.Flags().StringVar(&testID, "id", "", "pattern id")
	insights.AddCommand(test)

	weekly := &cobra.Command{Use: "weekly", Short: "Weekly summaries"}
	weekly.AddCommand(&cobra.Command{
		Use:   "build",
		Short: "Build a weekly summary from the last seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				w, err := app.InsightsCLI.BuildWeekly(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "week of %s: %d check-ins, alignment %d%%\n", w.WeekStarting.Format("2006-01-02"), w.CheckInCount, w.ValueAlignmentScore)
				for _, s := range w.BlindSpotSuggestions {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  "+s)
				}
				return nil
			})
		},
	})
	weekly.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored weekly summaries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				history, err := app.InsightsCLI.WeeklyHistory(context.Background())
				if err != nil {
					return err
				}
				for _, w := range history {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d check-ins\talignment %d%%\n", w.WeekStarting.Format("2006-01-02"), w.CheckInCount, w.ValueAlignmentScore)
				}
				return nil
			})
		},
	})
	insights.AddCommand(weekly)

	insights.AddCommand(&cobra.Command{
		Use:   "narrative",
		Short: "Narrative insights from the current journey's answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				n, err := app.InsightsCLI.Narrative(context.Background())
				if err != nil {
					return err
				}
				printed := false
				for _, ri := range narrativeRules(n) {
					if ri == nil {
						continue
					}
					printed = true
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ri.Insight)
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  advice: "+ri.Advice)
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  affirmation: "+ri.Affirmation)
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  reflect: "+ri.ReflectionQuestion)
				}
				if !printed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "answer a few rules first")
				}
				if n.OverallTheme != "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), n.OverallTheme)
				}
				return nil
			})
		},
	})

	return insights
}

func frequencyRows(counts []insightsdomain.FrequencyCount) []string {
	if len(counts) == 0 {
		return []string{"(none)"}
	}
	rows := make([]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, fmt.Sprintf("%s\t%d", c.Item, c.Count))
	}
	return rows
}

func narrativeRules(n insightsdomain.JourneyInsights) []*insightsdomain.RuleInsight {
	return []*insightsdomain.RuleInsight{n.Rule1, n.Rule2, n.Rule3, n.Rule4, n.Rule5}
}

func newProfileCmd(dataPath *string, verbose *bool) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Preferences, values, progress, baseline"}

	prefs := &cobra.Command{Use: "prefs", Short: "Onboarding preferences"}
	prefs.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				p := app.ProfileCLI.Preferences(context.Background())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal=%s reminder=%s tone=%s depth=%s privacy=%s reduced-motion=%t\n", p.Goal, p.ReminderTime, p.Tone, p.Depth, p.Privacy, p.ReducedMotion)
				return nil
			})
		},
	})
	var prefsInput profiledomain.Preferences
	setPrefs := &cobra.Command{
		Use:   "set",
		Short: "Save preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.ProfileCLI.SavePreferences(context.Background(), prefsInput); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "preferences saved")
				return nil
			})
		},
	}
	defaults := profiledomain.DefaultPreferences()
	setPrefs.Flags().StringVar(&prefsInput.Goal, "goal", defaults.Goal, "primary goal")
	setPrefs.Flags().StringVar(&prefsInput.ReminderTime, "reminder", defaults.ReminderTime, "daily reminder HH:MM")
	setPrefs.Flags().StringVar(&prefsInput.Tone, "tone", defaults.Tone, "tone: gentle|direct")
	setPrefs.Flags().StringVar(&prefsInput.Depth, "depth", defaults.Depth, "depth: quick|deep")
	setPrefs.Flags().StringVar(&prefsInput.Privacy, "privacy", defaults.Privacy, "privacy: local")
	setPrefs.Flags().BoolVar(&prefsInput.ReducedMotion, "reduced-motion", false, "reduce animations")
	prefs.AddCommand(setPrefs)
	profile.AddCommand(prefs)

	values := &cobra.Command{Use: "values", Short: "Sorted personal values"}
	values.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show sorted values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				v, ok := app.ProfileCLI.Values(context.Background())
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "values not sorted yet")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (sorted %s)\n", strings.Join(v.TopValues, ", "), v.SortedAt.Format("2006-01-02"))
				return nil
			})
		},
	})
	var topValues []string
	setValues := &cobra.Command{
		Use:   "set --top <v1,v2,...>",
		Short: "Save the sorted top values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				v, err := app.ProfileCLI.SaveValues(context.Background(), topValues)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %d values\n", len(v.TopValues))
				return nil
			})
		},
	}
	setValues.Flags().StringSliceVar(&topValues, "top", nil, "values in priority order")
	values.AddCommand(setValues)
	profile.AddCommand(values)

	progress := &cobra.Command{Use: "progress", Short: "Growth track progress"}
	progress.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show progress across tracks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				p := app.ProfileCLI.Progress(context.Background())
				for _, row := range []struct {
					name  string
					track profiledomain.TrackProgress
				}{
					{"emotion", p.Emotion},
					{"thought", p.Thought},
					{"behaviour", p.Behaviour},
					{"values", p.Values},
					{"blind-spots", p.BlindSpots},
				} {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tlevel %d\tlessons %d\tpractices %d\n", row.name, row.track.Level, row.track.LessonsCompleted, row.track.PracticesCompleted)
				}
				return nil
			})
		},
	})
	var lessonTrack string
	lesson := &cobra.Command{
		Use:   "lesson --track <name>",
		Short: "Record a completed lesson",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				_, err := app.ProfileCLI.RecordLesson(context.Background(), lessonTrack)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "lesson recorded")
				return nil
			})
		},
	}
	lesson.Flags().StringVar(&lessonTrack, "track", "", "track: emotion|thought|behaviour|values|blind-spots")
	progress.AddCommand(lesson)
	var practiceTrack string
	practice := &cobra.Command{
		Use:   "practice --track <name>",
		Short: "Record a completed practice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				_, err := app.ProfileCLI.RecordPractice(context.Background(), practiceTrack)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "practice recorded")
				return nil
			})
		},
	}
	practice.Flags().StringVar(&practiceTrack, "track", "", "track: emotion|thought|behaviour|values|blind-spots")
	progress.AddCommand(practice)
	profile.AddCommand(progress)

	baseline := &cobra.Command{Use: "baseline", Short: "Onboarding baseline snapshot"}
	baseline.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the baseline snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				b, ok := app.ProfileCLI.Baseline(context.Background())
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no baseline captured")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mood=%s stress=%s challenge=%s awareness=%d captured=%s\n", b.CurrentMood, b.TypicalStressResponse, b.BiggestChallenge, b.SelfAwarenessLevel, b.CapturedAt.Format("2006-01-02"))
				if len(b.WhatMatters) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "matters: %s\n", strings.Join(b.WhatMatters, ", "))
				}
				return nil
			})
		},
	})
	var baselineInput profiledomain.BaselineSnapshot
	setBaseline := &cobra.Command{
		Use:   "set",
		Short: "Capture the baseline snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				_, err := app.ProfileCLI.SaveBaseline(context.Background(), baselineInput)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "baseline captured")
				return nil
			})
		},
	}
	setBaseline.Flags().StringVar(&baselineInput.CurrentMood, "mood", "", "current mood")
	setBaseline.Flags().StringVar(&baselineInput.TypicalStressResponse, "stress", "", "typical stress response")
	setBaseline.Flags().StringVar(&baselineInput.BiggestChallenge, "challenge", "", "biggest challenge")
	setBaseline.Flags().StringSliceVar(&baselineInput.WhatMatters, "matters", nil, "what matters most")
	setBaseline.Flags().IntVar(&baselineInput.SelfAwarenessLevel, "awareness", 5, "self-awareness 1..10")
	baseline.AddCommand(setBaseline)
	profile.AddCommand(baseline)

	return profile
}

func newOnboardingCmd(dataPath *string, verbose *bool) *cobra.Command {
	onboarding := &cobra.Command{Use: "onboarding", Short: "Onboarding state"}
	onboarding.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether onboarding is complete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				done := app.ProfileCLI.OnboardingCompleted(context.Background())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed=%t\n", done)
				return nil
			})
		},
	})
	onboarding.AddCommand(&cobra.Command{
		Use:   "complete",
		Short: "Mark onboarding complete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.ProfileCLI.CompleteOnboarding(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "onboarding complete")
				return nil
			})
		},
	})
	return onboarding
}

func newExportCmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all stored data as one JSON document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				payload, err := app.ExportCLI.ExportAll(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			})
		},
	}
}

func newClearCmd(dataPath *string, verbose *bool) *cobra.Command {
	var confirmed bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("pass --yes to confirm deleting all data")
			}
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				if err := app.ExportCLI.ClearAll(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
				return nil
			})
		},
	}
	clear.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion")
	return clear
}

func newReindexCmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite check-in index from the JSON store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				n, err := app.CheckInCLI.Reindex(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d check-ins\n", n)
				return nil
			})
		},
	}
}

func newPluginCmd(dataPath *string, verbose *bool) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Insight plugin operations"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				plugins, err := app.PluginCLI.List(context.Background())
				if err != nil {
					return err
				}
				if len(plugins) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
					return nil
				}
				for _, p := range plugins {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t caps=%s binary=%s\n", p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","), p.Binary)
				}
				return nil
			})
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				results, err := app.PluginCLI.Doctor(context.Background())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
					return nil
				}
				for _, r := range results {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
					if r.Error != "" {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			})
		},
	})

	var insightPlugin string
	var insightDays int
	insight := &cobra.Command{
		Use:   "insight --plugin <name>",
		Short: "Generate an insight through a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(insightPlugin) == "" {
				return fmt.Errorf("--plugin is required")
			}
			return withApp(*dataPath, *verbose, func(app *bootstrap.App) error {
				out, err := app.PluginCLI.GenerateInsight(context.Background(), plugindto.InsightInput{
					PluginName: insightPlugin,
					Days:       insightDays,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Title)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Body)
				for _, s := range out.Suggestions {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  - "+s)
				}
				return nil
			})
		},
	}
	insight.Flags().StringVar(&insightPlugin, "plugin", "", "plugin name")
	insight.Flags().IntVar(&insightDays, "days", 0, "report window in days (default: one week)")
	plugin.AddCommand(insight)

	return plugin
}
