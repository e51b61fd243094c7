package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecadlabs/xbuf"
)

// NewXorCommand returns the command computing the byte-wise XOR of two equal length inputs
func NewXorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "xor A B",
		Short:   "XOR two inputs of equal length",
		Example: `  xbuf xor -f hex 00ff00 ff00ff`,
		RunE:    runXor,
		Args:    cobra.ExactArgs(2),
	}
	addCodecFlags(cmd, "hex", "hex")
	return cmd
}

func runXor(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bufs, err := decodeArgs(log, args)
	if err != nil {
		return err
	}
	x, err := bufs[0].Xor(bufs[1])
	if err != nil {
		log.Error("xor failed", zap.Error(err))
		return err
	}
	return printBuffer(cmd, x)
}

// NewConcatCommand returns the command concatenating inputs
func NewConcatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concat A [B...]",
		Short: "Concatenate inputs",
		RunE:  runConcat,
		Args:  cobra.MinimumNArgs(1),
	}
	addCodecFlags(cmd, "hex", "hex")
	return cmd
}

func runConcat(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bufs, err := decodeArgs(log, args)
	if err != nil {
		return err
	}
	return printBuffer(cmd, xbuf.Concat(bufs[0], bufs[1:]...))
}

// NewEqualCommand returns the command comparing two inputs
func NewEqualCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equal A B",
		Short: "Report whether two inputs hold the same bytes",
		RunE:  runEqual,
		Args:  cobra.ExactArgs(2),
	}
	addCodecFlags(cmd, "hex", "")
	return cmd
}

func runEqual(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bufs, err := decodeArgs(log, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), xbuf.Equal(bufs[0], bufs[1]))
	return err
}
