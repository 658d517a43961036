package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/uni-matcher/internal/catalog"
)

var majorsCmd = &cobra.Command{
	Use:   "majors",
	Short: "List the recognized majors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := catalog.Load(viper.GetString("catalog-file"))
		if err != nil {
			return err
		}

		for _, m := range cat.Majors() {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(majorsCmd)
}
