package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spigell/uni-matcher/internal/language"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the TOEFL to Duolingo conversion table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			headerStyle.Render("TOEFL"),
			headerStyle.Render("Duolingo"),
			headerStyle.Render("IELTS"),
			headerStyle.Render("Level"),
		)
		for _, e := range language.Table() {
			fmt.Fprintf(tw, "%v\t%v\t%v\t%s\n", e.TOEFL, e.Duolingo, language.ToIELTS(e.TOEFL, language.TOEFL), e.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
