package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swdee/go-layoutproc/extract"
	"go.uber.org/zap"
)

var titlesCmd = &cobra.Command{
	Use:   "titles [file]",
	Short: "List the LaTeX sectioning commands found in a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runTitles,
}

func runTitles(cmd *cobra.Command, args []string) error {

	data, err := os.ReadFile(args[0])

	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	titles, err := extract.LatexTitles(string(data))

	if err != nil {
		return err
	}

	logger.Debug("scanned document",
		zap.String("file", args[0]),
		zap.Int("titles", len(titles)),
	)

	for _, title := range titles {
		fmt.Println(title)
	}

	return nil
}
