package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecadlabs/xbuf"
)

// NewRandomCommand returns the command generating random bytes
func NewRandomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random LENGTH",
		Short: "Generate cryptographically random bytes",
		RunE:  runRandom,
		Args:  cobra.ExactArgs(1),
	}
	addCodecFlags(cmd, "", "hex")
	return cmd
}

func runRandom(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid length: %w", err)
	}
	b, err := xbuf.Random(n)
	if err != nil {
		return err
	}
	log.Debug("generated random bytes", zap.Int("length", n))
	return printBuffer(cmd, b)
}
