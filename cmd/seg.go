package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teatak/mmseg/pipeline"
)

func init() {
	segCmd.Flags().StringP("dict", "d", "data/dict.txt", "dictionary file, one word per line")
	segCmd.Flags().StringP("stopwords", "s", "", "stopword file, one word per line")
	segCmd.Flags().StringP("input", "i", "data/corpus.txt", "corpus file to segment")
	segCmd.Flags().StringP("output", "o", "segmented.txt", "segmented output file")
	segCmd.Flags().StringP("report", "r", "output.txt", "frequency report file")
	segCmd.Flags().IntP("top", "n", 10, "number of entries in the frequency report")
	segCmd.Flags().String("encoding", "", "input encoding: gbk, gb18030 (default utf-8)")

	viper.BindPFlag("seg.dict", segCmd.Flags().Lookup("dict"))
	viper.BindPFlag("seg.stopwords", segCmd.Flags().Lookup("stopwords"))
	viper.BindPFlag("seg.input", segCmd.Flags().Lookup("input"))
	viper.BindPFlag("seg.output", segCmd.Flags().Lookup("output"))
	viper.BindPFlag("seg.report", segCmd.Flags().Lookup("report"))
	viper.BindPFlag("seg.top", segCmd.Flags().Lookup("top"))
	viper.BindPFlag("seg.encoding", segCmd.Flags().Lookup("encoding"))

	rootCmd.AddCommand(segCmd)
}

var segCmd = &cobra.Command{
	Use:   "seg",
	Short: "segment a corpus and report word frequency",
	Long: `seg reads a corpus line by line, writes the segmentation of each
line as [token][token]... to the output file, and writes the top-N
token frequencies to the report file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := pipeline.Config{
			DictPath:      expandPath(viper.GetString("seg.dict")),
			StopwordsPath: expandPath(viper.GetString("seg.stopwords")),
			InputPath:     expandPath(viper.GetString("seg.input")),
			SegmentedPath: expandPath(viper.GetString("seg.output")),
			ReportPath:    expandPath(viper.GetString("seg.report")),
			TopN:          viper.GetInt("seg.top"),
			Encoding:      viper.GetString("seg.encoding"),
		}
		res, err := pipeline.Run(cfg)
		if err != nil {
			log.Fatalf("seg: %v", err)
		}
		log.Printf("Done. Segmented %d lines, %d distinct tokens. Saved to %s",
			res.Lines, res.Table.Distinct(), cfg.SegmentedPath)
	},
}
