// Package cmd contains all the commands included in the xbuf binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ecadlabs/xbuf/internal/logger"
)

const (
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with XBUF,
// or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("XBUF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	for _, path := range []string{"$HOME/.xbuf", "."} {
		viper.AddConfigPath(path)
	}
	_ = viper.ReadInConfig()

	cmd := &cobra.Command{
		Use:   "xbuf",
		Short: "Convert binary data between UTF-8, base64, base64url, hex and raw text",
		Long: `Convert binary data between UTF-8, base64, base64url, hexadecimal and raw (Latin-1) text.

Besides plain conversion xbuf can generate random bytes and concatenate, XOR or compare buffers.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "the log format to output logs in: text or json")
	mustBindPFlag(logFormatConf, flags.Lookup(logFormatFlag))
	flags.String(logLevelFlag, "warn", "the log level to use, 'none' disables logging")
	mustBindPFlag(logLevelConf, flags.Lookup(logLevelFlag))

	return cmd
}

func newLogger() (*logger.ZapLogger, error) {
	return logger.NewLogger(viper.GetString(logFormatConf), viper.GetString(logLevelConf))
}
