/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/luci/internal/app"
	"github.com/eslsoft/luci/internal/infrastructure/database"
)

var extractVocabularyCmd = &cobra.Command{
	Use:   "extract-vocabulary",
	Short: "Build the word table from stored messages and quotes",
	Long: `Tokenizes every stored message and quote and inserts the tokens that are
not yet in the word table. Existing words and their tags are left untouched,
so the command can be run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tools, cleanup, err := app.InitializeTools()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		if err := database.Migrate(cmd.Context(), tools.DB.Driver); err != nil {
			return err
		}

		report, err := tools.Extractor.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("extract vocabulary: %w", err)
		}
		cmd.Printf("scanned %d texts: %d unique tokens, %d new words (%s)\n",
			report.Texts, report.Unique, report.Created, report.Elapsed.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractVocabularyCmd)
}
