package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarin-dev/fanyi"
	"github.com/akarin-dev/fanyi/locale"
)

// options are the root command's flags. Zero values mean "not set", so the
// config file and built-in defaults can fill them in.
type options struct {
	from       string
	to         string
	formats    []string
	collapse   int
	configPath string
	keyFile    string
	watchMode  bool
	verbose    bool
	endpoint   string
}

const formatHelp = `Format escapes for -m/--fmt (repeatable; each template is
applied to every translated row, receiving the translated text as argument 0
and the source text as argument 1):

  %s   next argument, plain        %n   line feed
  %r   next argument, quoted       %N   carriage return
  %R   next argument, expanded     %t   tab
  %0s  argument 0 (digits 0-9,     %e   ESC
       then a style character)     %%   literal percent
  %xHH / %uHHHH / %UHHHHHH         code point from hex digits

The default format "%s\n%s\n" prints the translation and the source text on
separate lines.`

func newRootCmd() *cobra.Command {
	msgs := locale.FromEnv()
	opts := &options{collapse: -1}

	cmd := &cobra.Command{
		Use:   "fanyi [flags] <file>",
		Short: "Translate text with the Baidu Fanyi API",
		Long: `fanyi reads a text file (or stdin when <file> is "-"), translates it with
the Baidu Fanyi general translation API, and prints each translated row
through one or more output templates.

Credentials come from $HOME/.baidufanyi_key (line 1: app id, line 2: app
key) or the BAIDU_APP_ID / BAIDU_APP_KEY environment variables; run
"fanyi init" to set them up.

` + formatHelp,
		Version:       fanyi.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, msgs, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.from, "from", "f", "", "source language (API code or BCP 47 tag)")
	flags.StringVarP(&opts.to, "to", "t", "", "target language (API code or BCP 47 tag)")
	flags.StringArrayVarP(&opts.formats, "fmt", "m", nil, "output template (repeatable)")
	flags.IntVarP(&opts.collapse, "collapse", "o", -1, "max whitespace run kept in input (default 2)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: probe XDG locations)")
	flags.StringVar(&opts.keyFile, "key-file", "", "credentials file (default: $HOME/.baidufanyi_key)")
	flags.BoolVarP(&opts.watchMode, "watch", "w", false, "re-translate <file> whenever it changes")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flags.StringVar(&opts.endpoint, "endpoint", "", "override the API endpoint")
	_ = flags.MarkHidden("endpoint")

	cmd.AddCommand(newInitCmd(msgs), newSchemaCmd(), newLangsCmd())
	return cmd
}
