package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// stdio selects stdin or stdout in place of a backup path.
const stdio = "-"

func tablesFromConfig(key string) []string {
	return normalizeTables(viper.GetStringSlice(key))
}

// normalizeTables lowercases and trims table names, dropping blanks and
// repeats. It returns nil when nothing is left.
func normalizeTables(values []string) []string {
	names := lo.FilterMap(values, func(value string, _ int) (string, bool) {
		name := strings.ToLower(strings.TrimSpace(value))
		return name, name != ""
	})
	if len(names) == 0 {
		return nil
	}
	return lo.Uniq(names)
}

// useGzip reports whether the stream at path is compressed. A .gz suffix
// turns compression on even without the flag.
func useGzip(path string, flagged bool) bool {
	if flagged {
		return true
	}
	return path != stdio && strings.HasSuffix(strings.ToLower(path), ".gz")
}

func defaultExportFilename(gzipEnabled bool) string {
	filename := fmt.Sprintf("luci-backup-%s.jsonl", time.Now().UTC().Format("20060102-150405"))
	if gzipEnabled {
		filename += ".gz"
	}
	return filename
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
