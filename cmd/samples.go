package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/uni-matcher/internal/catalog"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the sample student profiles usable with match --sample",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := catalog.Load(viper.GetString("catalog-file"))
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			headerStyle.Render("ID"),
			headerStyle.Render("Name"),
			headerStyle.Render("GPA"),
			headerStyle.Render("Language"),
			headerStyle.Render("SAT"),
			headerStyle.Render("Major"),
		)
		for _, s := range cat.Samples() {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%.0f\t%s\n",
				s.ID, s.Name, s.Profile.GPA, s.Profile.LanguageTest, s.Profile.SAT, s.Profile.Major)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
