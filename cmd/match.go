package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/filtering"
	"github.com/spigell/uni-matcher/internal/logger"
	"github.com/spigell/uni-matcher/internal/matching"
	"github.com/spigell/uni-matcher/internal/report"
)

const (
	PromptShowSafety = "Show safety schools"
	PromptShowTarget = "Show target schools"
	PromptShowReach  = "Show reach schools"
	PromptDetails    = "Show match details"
	PromptSaveReport = "Save markdown report"
	PromptDumpToFile = "Dump results to file"
	PromptExclude    = "Exclude a university"
	PromptExit       = "Exit"
	PromptBack       = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowSafety, PromptShowTarget, PromptShowReach, PromptDetails, PromptExclude, PromptSaveReport, PromptDumpToFile, PromptExit},
}

var promptCategories = map[string]matching.Category{
	PromptShowSafety: matching.Safety,
	PromptShowTarget: matching.Target,
	PromptShowReach:  matching.Reach,
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a student profile against the university catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	addProfileFlags(matchCmd.Flags())
	matchCmd.Flags().Bool("pick-sample", false, "choose a sample student interactively")
	matchCmd.Flags().BoolP("yes", "y", false, "do not ask for actions, save the report and exit")
	matchCmd.Flags().StringP("report-dir", "r", "", "a directory for markdown reports. Default is the current directory.")
	matchCmd.Flags().StringP("exclude-file", "e", "", "special file with dismissed universities to exclude. Default is unset.")
	matchCmd.Flags().StringSlice("country", nil, "keep only universities in these countries")
	matchCmd.Flags().Int("max-tuition", 0, "keep only universities with annual tuition (USD) up to this value")
	matchCmd.Flags().StringSlice("category", nil, "keep only these categories (safety, target, reach)")

	viper.BindPFlag("report-dir", matchCmd.Flags().Lookup("report-dir"))
	viper.BindPFlag("exclude-file", matchCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("preferences.countries", matchCmd.Flags().Lookup("country"))
	viper.BindPFlag("preferences.max-tuition", matchCmd.Flags().Lookup("max-tuition"))
	viper.BindPFlag("preferences.categories", matchCmd.Flags().Lookup("category"))
}

// match is the main command for the cli.
func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := newCommandLogger(cmd)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the uni-matcher", zap.String("version", version))

	cat, err := catalog.Load(config.CatalogFile)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	sampleID, _ := cmd.Flags().GetString("sample")
	if pick, _ := cmd.Flags().GetBool("pick-sample"); pick {
		sampleID, err = pickSample(cat)
		if err != nil {
			logger.Fatal("picking a sample", zap.Error(err))
		}
	}

	profile, err := buildProfile(cmd.Flags(), config.Student, cat, sampleID)
	if err != nil {
		logger.Fatal("building a student profile", zap.Error(err))
	}

	results, err := matching.NewEngine(cat, logger).Match(profile)
	if err != nil {
		var verrs matching.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				logger.Error("invalid student profile", zap.String("field", v.Field), zap.String("reason", v.Message))
			}
			os.Exit(1)
		}
		logger.Fatal("matching failed", zap.Error(err))
	}

	steps := filtering.FromPreferences(config.Preferences, config.ExcludeFile, logger)
	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	results, err = filtering.New(steps, logger).RunFilters(ctx, results)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	renderProfile(out, profile)
	renderSummary(out, results.Partition().Summary())

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no universities left after filters"))
		return
	}

	if err := renderResults(out, "All matches", results.Items); err != nil {
		logger.Fatal("rendering results", zap.Error(err))
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		if err := handleAction(PromptSaveReport, cmd, logger, config, profile, results); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, cmd, logger, config, profile, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, cmd *cobra.Command, logger *zap.Logger, config *Config, profile matching.StudentProfile, results *matching.Results) error {
	out := cmd.OutOrStdout()

	switch action {
	case PromptShowSafety, PromptShowTarget, PromptShowReach:
		category := promptCategories[action]
		return renderResults(out, category.Title(), results.Partition().ByCategory(category))
	case PromptDetails:
		return showDetails(cmd, results)
	case PromptExclude:
		return excludeUniversity(logger, config.ExcludeFile, results)
	case PromptSaveReport:
		filename, err := report.WriteMarkdown(config.ReportDir, profile, results.Items, time.Now())
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		logger.Info("report saved", zap.String("filename", filename))
		return nil
	case PromptDumpToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showDetails(cmd *cobra.Command, results *matching.Results) error {
	for {
		items := make([]string, 0, results.Len()+1)
		for _, r := range results.Items {
			items = append(items, fmt.Sprintf("%s %s / %d%% / %s", r.ID, r.Name, r.MatchScore, r.Category))
		}

		universityPrompt := promptui.Select{
			Label: "Choose a university and press ENTER",
			Items: append(items, PromptBack),
			Size:  10,
		}

		_, selected, err := universityPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		id := strings.Split(selected, " ")[0]
		r := results.FindByID(id)
		if r == nil {
			return fmt.Errorf("there is no such university id %s", id)
		}

		renderDetails(cmd.OutOrStdout(), r)
	}
}

func pickSample(cat *catalog.Catalog) (string, error) {
	samples := cat.Samples()
	items := make([]string, 0, len(samples))
	for _, s := range samples {
		items = append(items, fmt.Sprintf("%s %s: %s", s.ID, s.Name, s.Description))
	}

	samplePrompt := promptui.Select{
		Label: "Choose a sample student",
		Items: items,
	}

	i, _, err := samplePrompt.Run()
	if err != nil {
		return "", err
	}

	return samples[i].ID, nil
}

func newCommandLogger(cmd *cobra.Command) (*zap.Logger, error) {
	return logger.NewCommand(viper.GetBool("json"), viper.GetBool("debug"), cmd.Name(), viper.GetString("catalog-file"))
}

func excludeUniversity(logger *zap.Logger, excludeFile string, results *matching.Results) error {
	if excludeFile == "" {
		logger.Warn("exclude file is not configured", zap.String("hint", "set exclude-file in the config or pass --exclude-file"))
		return nil
	}

	items := make([]string, 0, results.Len()+1)
	for _, r := range results.Items {
		items = append(items, fmt.Sprintf("%s %s", r.ID, r.Name))
	}

	universityPrompt := promptui.Select{
		Label: "Choose a university to exclude",
		Items: append(items, PromptBack),
		Size:  10,
	}

	_, selected, err := universityPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	id := strings.Split(selected, " ")[0]
	if results.FindByID(id) == nil {
		return fmt.Errorf("there is no such university id %s", id)
	}

	excluded, err := matching.GetExcludedFromFile(excludeFile)
	if err != nil {
		return err
	}

	dismissed := &matching.Results{Items: []matching.MatchResult{*results.FindByID(id)}}
	excluded.Append(dismissed.ToExcluded())

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	results.Keep(func(m matching.MatchResult) bool { return m.ID != id })
	logger.Info("appended to exclude file",
		zap.String("filename", excludeFile),
		zap.String("university_id", id),
		zap.Int("universities_left", results.Len()),
	)
	return nil
}
