package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewConvertCommand returns the command converting text between encodings
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [TEXT]",
		Short: "Convert text from one encoding to another",
		Long:  "Convert text from one encoding to another. The text is read from the standard input if no argument is given.",
		Example: `  xbuf convert --from utf8 --to base64 "Input string for buffer"
  echo -n 0x496e707574 | xbuf convert -f hex -t utf8`,
		RunE: runConvert,
		Args: cobra.MaximumNArgs(1),
	}
	addCodecFlags(cmd, "utf8", "hex")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		args = []string{strings.TrimRight(string(in), "\r\n")}
		log.Debug("read input", zap.Int("length", len(in)))
	}

	bufs, err := decodeArgs(log, args)
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		return err
	}
	return printBuffer(cmd, bufs[0])
}
