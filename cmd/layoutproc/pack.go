package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/swdee/go-layoutproc/textpack"
	"go.uber.org/zap"
)

var (
	chunkInput      string
	chunkLimit      int
	chunkTerminator string
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack text segments into chunks of at least the character limit",
	Long: `Reads one text segment per line and greedily packs them into chunks
whose character count reaches the limit.  Segments over the limit are split
into sentences first.`,
	RunE: runPack,
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge sentence fragments into chunks bounded by the character limit",
	Long: `Reads one text per line, splits all of them into sentences and merges
the sentences into chunks close to the character limit.`,
	RunE: runMerge,
}

func init() {
	for _, cmd := range []*cobra.Command{packCmd, mergeCmd} {
		cmd.Flags().StringVarP(&chunkInput, "input", "i", "-",
			"input file with one segment per line, - for stdin")
		cmd.Flags().IntVarP(&chunkLimit, "limit", "n", 512,
			"character budget per chunk")
		cmd.Flags().StringVar(&chunkTerminator, "terminator", string(textpack.DefaultTerminator),
			"sentence terminator character")
	}
}

func runPack(cmd *cobra.Command, args []string) error {

	segments, packer, err := chunkSetup()

	if err != nil {
		return err
	}

	chunks := packer.Pack(segments, chunkLimit)

	logger.Debug("packed segments",
		zap.Int("segments", len(segments)),
		zap.Int("chunks", len(chunks)),
	)

	return writeChunks(os.Stdout, chunks)
}

func runMerge(cmd *cobra.Command, args []string) error {

	texts, packer, err := chunkSetup()

	if err != nil {
		return err
	}

	chunks := packer.Merge(texts, chunkLimit)

	logger.Debug("merged texts",
		zap.Int("texts", len(texts)),
		zap.Int("chunks", len(chunks)),
	)

	return writeChunks(os.Stdout, chunks)
}

// chunkSetup reads the input lines and builds the packer shared by the
// pack and merge commands
func chunkSetup() ([]string, *textpack.Packer, error) {

	lines, err := readLines(chunkInput)

	if err != nil {
		return nil, nil, err
	}

	packer := textpack.NewPacker()

	runes := []rune(chunkTerminator)

	if len(runes) != 1 {
		return nil, nil, fmt.Errorf("terminator must be a single character, got %q", chunkTerminator)
	}

	packer.Terminator = runes[0]

	return lines, packer, nil
}

// readLines reads the input file, or stdin when file is "-", into a slice
// of lines
func readLines(file string) ([]string, error) {

	var r io.Reader = os.Stdin

	if file != "-" {
		f, err := os.Open(file)

		if err != nil {
			return nil, fmt.Errorf("error opening input: %w", err)
		}

		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return lines, nil
}

// writeChunks prints each chunk on its own line
func writeChunks(w io.Writer, chunks []string) error {

	for _, chunk := range chunks {
		if _, err := fmt.Fprintln(w, chunk); err != nil {
			return err
		}
	}

	return nil
}
