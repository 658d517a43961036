package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spigell/uni-matcher/internal/language"
)

var convertCmd = &cobra.Command{
	Use:   "convert SCORE",
	Short: "Convert a language test score between TOEFL, Duolingo and IELTS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		return convert(cmd, args[0], from, to)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("from", "f", string(language.TOEFL), "source test (toefl, duolingo, ielts)")
	convertCmd.Flags().StringP("to", "t", string(language.Duolingo), "target test (toefl, duolingo, ielts)")
}

func convert(cmd *cobra.Command, rawScore, rawFrom, rawTo string) error {
	score, err := strconv.ParseFloat(rawScore, 64)
	if err != nil {
		return fmt.Errorf("parse score %q: %w", rawScore, err)
	}

	from, err := language.ParseType(rawFrom)
	if err != nil {
		return err
	}

	to, err := language.ParseType(rawTo)
	if err != nil {
		return err
	}

	source := language.Test{Type: from, Score: score}
	if !language.IsValid(score, from) {
		low, high, _ := language.Range(from)
		return fmt.Errorf("%s is out of range [%v, %v]", source, low, high)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s = %s\n", titleStyle.Render(source.String()), language.Test{Type: to, Score: language.Convert(score, from, to)})
	fmt.Fprintf(out, "Normalized: %.1f%%\n", language.Normalize(score, from)*100)
	fmt.Fprintf(out, "Level: %s\n", language.Describe(score, from))

	return nil
}
