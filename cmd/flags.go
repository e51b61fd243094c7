package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fromFlag = "from"
	toFlag   = "to"
	withFlag = "with"
)

// mustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// addCodecFlags registers the encoding flags. An empty default skips the flag:
// commands without input have no --from, commands without text output have no --to
func addCodecFlags(command *cobra.Command, from, to string) {
	flags := command.Flags()
	if from != "" {
		flags.StringP(fromFlag, "f", from, "the encoding of the input: utf8, base64, base64url, hex or raw")
	}
	if to != "" {
		flags.StringP(toFlag, "t", to, "the encoding of the output: utf8, base64, base64url, hex or raw")
		flags.BoolP(withFlag, "w", false, "add the 0x prefix to hex output or keep padding in base64url output")
	}

	// the keys are shared between commands so bind them for the one being run only
	command.PreRun = func(cmd *cobra.Command, _ []string) {
		for _, name := range []string{fromFlag, toFlag, withFlag} {
			if f := flags.Lookup(name); f != nil {
				mustBindPFlag(name, f)
			}
		}
	}
}
