package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teatak/mmseg/pipeline"
)

func init() {
	tfidfCmd.Flags().StringP("dict", "d", "data/dict.txt", "dictionary file, one word per line")
	tfidfCmd.Flags().StringP("stopwords", "s", "", "stopword file, one word per line")
	tfidfCmd.Flags().StringP("dir", "i", "data/dataset", "directory of .txt documents")
	tfidfCmd.Flags().StringP("report", "r", "tf-idf.txt", "tf-idf report file")
	tfidfCmd.Flags().IntP("top", "k", 100, "number of terms reported per document")
	tfidfCmd.Flags().String("encoding", "", "input encoding: gbk, gb18030 (default utf-8)")

	viper.BindPFlag("tfidf.dict", tfidfCmd.Flags().Lookup("dict"))
	viper.BindPFlag("tfidf.stopwords", tfidfCmd.Flags().Lookup("stopwords"))
	viper.BindPFlag("tfidf.dir", tfidfCmd.Flags().Lookup("dir"))
	viper.BindPFlag("tfidf.report", tfidfCmd.Flags().Lookup("report"))
	viper.BindPFlag("tfidf.top", tfidfCmd.Flags().Lookup("top"))
	viper.BindPFlag("tfidf.encoding", tfidfCmd.Flags().Lookup("encoding"))

	rootCmd.AddCommand(tfidfCmd)
}

var tfidfCmd = &cobra.Command{
	Use:   "tfidf",
	Short: "score documents by tf-idf",
	Long: `tfidf segments every .txt document under a directory, scores terms
by tf-idf across the document set, and writes per-document and overall
term rankings to the report file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := pipeline.TFIDFConfig{
			DictPath:      expandPath(viper.GetString("tfidf.dict")),
			StopwordsPath: expandPath(viper.GetString("tfidf.stopwords")),
			InputDir:      expandPath(viper.GetString("tfidf.dir")),
			ReportPath:    expandPath(viper.GetString("tfidf.report")),
			TopK:          viper.GetInt("tfidf.top"),
			Encoding:      viper.GetString("tfidf.encoding"),
		}
		corpus, err := pipeline.RunTFIDF(cfg)
		if err != nil {
			log.Fatalf("tfidf: %v", err)
		}
		log.Printf("Done. Scored %d documents. Saved to %s", corpus.Len(), cfg.ReportPath)
	},
}
