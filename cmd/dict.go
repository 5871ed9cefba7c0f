package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teatak/mmseg/lexicon"
)

func init() {
	dictCmd.Flags().StringP("input", "i", "data/dict_raw.txt", "raw word list to clean")
	dictCmd.Flags().StringP("output", "o", "data/dict.txt", "cleaned dictionary file")

	viper.BindPFlag("dict.input", dictCmd.Flags().Lookup("input"))
	viper.BindPFlag("dict.output", dictCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(dictCmd)
}

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "clean a raw word list for segmentation",
	Long: `dict drops blank lines, punctuated entries, entries too long for
the matcher window, and duplicates from a raw word list.`,
	Run: func(cmd *cobra.Command, args []string) {
		in := expandPath(viper.GetString("dict.input"))
		out := expandPath(viper.GetString("dict.output"))
		res, err := lexicon.CleanDictionary(in, out)
		if err != nil {
			log.Fatalf("dict: %v", err)
		}
		log.Printf("Done. Kept %d words, dropped %d. Saved to %s", res.Kept, res.Dropped, out)
	},
}
