// Command daryfilter is a small demonstration harness for the cuckoo
// package: it builds a filter from a YAML file (named by --config) and
// DARYFILTER_* environment variables, bulk
// inserts a key range, measures the false-positive rate against an
// unseen range, and verifies deletion, with a cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Vigour-S/d-ary-Cuckoo-filter/cuckoo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "daryfilter",
		Short: "Build and exercise a d-ary cuckoo filter",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (max_keys, d, bits_per_tag, table_kind)")

	root.AddCommand(newBenchCmd(&cfgFile))
	return root
}

// loadConfig builds a cuckoo.Config by layering, lowest precedence first:
// the library's own DefaultConfig with 160000 keys, or, when a path is
// given, the YAML file in its place (read by cuckoo.LoadConfigFile, so its
// missing fields take DefaultConfig(0)'s values, max_keys 0 included), and
// then DARYFILTER_*-prefixed environment variable overrides read through
// viper.
func loadConfig(path string) (cuckoo.Config, error) {
	cfg := cuckoo.DefaultConfig(160000)
	if path != "" {
		fileCfg, err := cuckoo.LoadConfigFile(path)
		if err != nil {
			return cuckoo.Config{}, err
		}
		cfg = fileCfg
	}

	v := viper.New()
	v.SetEnvPrefix("daryfilter")
	v.AutomaticEnv()

	if v.IsSet("max_keys") {
		cfg.MaxKeys = v.GetUint64("max_keys")
	}
	if v.IsSet("d") {
		cfg.D = v.GetUint64("d")
	}
	if v.IsSet("bits_per_tag") {
		cfg.BitsPerTag = v.GetUint64("bits_per_tag")
	}
	if v.IsSet("table_kind") {
		kind, err := cuckoo.ParseTableKind(v.GetString("table_kind"))
		if err != nil {
			return cuckoo.Config{}, err
		}
		cfg.Kind = kind
	}

	return cfg, nil
}

func newBenchCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Insert, query, and delete a bulk key range, reporting the measured false-positive rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			return runBench(cfg)
		},
	}
}

func runBench(cfg cuckoo.Config) error {
	f, err := cuckoo.NewFilter(cfg)
	if err != nil {
		return fmt.Errorf("constructing filter: %w", err)
	}

	totalItems := cfg.MaxKeys
	numInserted := uint64(0)
	for i := uint64(0); i < totalItems; i++ {
		if f.Add(cuckoo.ItemUint64(i)) != cuckoo.Ok {
			break
		}
		numInserted++
	}

	falsePositives := uint64(0)
	queries := uint64(0)
	for i := totalItems; i < 2*totalItems; i++ {
		if f.Contain(cuckoo.ItemUint64(i)) == cuckoo.Ok {
			falsePositives++
		}
		queries++
	}

	var fpRate float64
	if queries > 0 {
		fpRate = 100 * float64(falsePositives) / float64(queries)
	}

	logrus.WithFields(logrus.Fields{
		"filter_id":    f.ID().String(),
		"num_inserted": numInserted,
		"fp_rate_pct":  fpRate,
	}).Info("bench complete")

	fmt.Printf("False positive rate: %.4f%%\n", fpRate)
	fmt.Print(f.Info())

	for i := uint64(0); i < numInserted; i++ {
		f.Delete(cuckoo.ItemUint64(i))
	}
	for i := uint64(0); i < numInserted; i++ {
		if f.Contain(cuckoo.ItemUint64(i)) != cuckoo.NotFound {
			return fmt.Errorf("item %d still found after delete", i)
		}
	}
	fmt.Println("delete verification passed")
	return nil
}
