package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ecadlabs/xbuf"
	"github.com/ecadlabs/xbuf/internal/logger"
)

func encodingConf(key string) (xbuf.Encoding, error) {
	return xbuf.ParseEncoding(viper.GetString(key))
}

// decodeArgs parses every argument as text in the --from encoding
func decodeArgs(log logger.Logger, args []string) ([]*xbuf.Buffer, error) {
	enc, err := encodingConf(fromFlag)
	if err != nil {
		return nil, err
	}
	out := make([]*xbuf.Buffer, len(args))
	for i, s := range args {
		b, err := xbuf.FromText(s, enc)
		if err != nil {
			return nil, err
		}
		log.Debug("decoded argument", zap.Int("index", i), zap.Stringer("encoding", enc), zap.Int("length", b.Len()))
		out[i] = b
	}
	return out, nil
}

// printBuffer writes the buffer in the --to encoding
func printBuffer(cmd *cobra.Command, b *xbuf.Buffer) error {
	enc, err := encodingConf(toFlag)
	if err != nil {
		return err
	}
	s, err := b.Text(enc, viper.GetBool(withFlag))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
