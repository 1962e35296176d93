package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akarin-dev/fanyi/config"
	"github.com/akarin-dev/fanyi/langs"
	"github.com/akarin-dev/fanyi/locale"
	"github.com/akarin-dev/fanyi/minifmt"
	"github.com/akarin-dev/fanyi/textutil"
	"github.com/akarin-dev/fanyi/translate"
	"github.com/akarin-dev/fanyi/watch"
)

// runTranslate is the root command: resolve configuration, compile the
// output templates, translate the input, and print the rendered rows.
func runTranslate(cmd *cobra.Command, msgs *locale.Messages, opts *options, file string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	templates, err := compileFormats(msgs, resolveFormats(opts, cfg))
	if err != nil {
		return err
	}

	from, to, err := resolveLangs(msgs, opts, cfg)
	if err != nil {
		return err
	}

	creds, err := config.LoadCredentials(opts.keyFile)
	if err != nil {
		if errors.Is(err, config.ErrCredentialsNotFound) {
			err = errors.New(msgs.T("credentials_missing", nil))
		}
		return &exitError{code: exitUsage, err: err}
	}

	clientOpts := []translate.Option{translate.WithTimeout(timeout(cfg))}
	if opts.endpoint != "" {
		clientOpts = append(clientOpts, translate.WithEndpoint(opts.endpoint))
	}
	client := translate.New(creds.AppID, creds.AppKey, clientOpts...)

	collapse := cfg.CollapseRuns
	if opts.collapse >= 0 {
		collapse = opts.collapse
	}

	once := func() error {
		return translateOnce(cmd, msgs, client, templates, file, from, to, collapse)
	}

	if opts.watchMode {
		if file == "-" {
			return &exitError{code: exitUsage, err: errors.New("--watch needs a file, not stdin")}
		}
		fmt.Fprintln(cmd.ErrOrStderr(), msgs.T("watch_started", map[string]any{"Path": file}))
		reportAndContinue := func() error {
			if err := once(); err != nil {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			return nil
		}
		_ = reportAndContinue()
		err := watch.Watch(cmd.Context(), file, reportAndContinue)
		if errors.Is(err, cmd.Context().Err()) {
			return nil
		}
		return err
	}

	return once()
}

// translateOnce runs one full read-translate-render cycle.
func translateOnce(cmd *cobra.Command, msgs *locale.Messages, client *translate.Client,
	templates []*minifmt.Template, file, from, to string, collapse int) error {

	text, err := readInput(cmd, file)
	if err != nil {
		return &exitError{code: exitReadInput,
			err: errors.New(msgs.T("read_input_failed", map[string]any{"Error": err.Error()}))}
	}
	text = textutil.CollapseWhitespace(text, collapse)

	result, err := client.TranslateText(cmd.Context(), text, from, to)
	if err != nil {
		return &exitError{code: exitTranslate,
			err: errors.New(msgs.T("translate_failed", map[string]any{"Error": err.Error()}))}
	}

	out := cmd.OutOrStdout()
	for _, tmpl := range templates {
		for _, row := range result.Rows {
			s, err := tmpl.RenderStrings(row.Dst, row.Src)
			if err != nil {
				return &exitError{code: exitTranslate,
					err: errors.New(msgs.T("render_failed", map[string]any{"Error": err.Error()}))}
			}
			if _, err := io.WriteString(out, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadConfig reads the configured or default config file.
func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		return config.Load(opts.configPath)
	}
	return config.LoadDefault()
}

// resolveFormats layers flag templates over config templates over the
// built-in default.
func resolveFormats(opts *options, cfg *config.Config) []string {
	if len(opts.formats) > 0 {
		return opts.formats
	}
	if len(cfg.Formats) > 0 {
		return cfg.Formats
	}
	return []string{config.DefaultFormat}
}

// compileFormats compiles every template up front so a bad -m fails before
// any network traffic.
func compileFormats(msgs *locale.Messages, formats []string) ([]*minifmt.Template, error) {
	templates := make([]*minifmt.Template, 0, len(formats))
	for _, format := range formats {
		tmpl, err := minifmt.Compile(format)
		if err != nil {
			return nil, &exitError{code: exitUsage,
				err: errors.New(msgs.T("bad_format", map[string]any{"Error": err.Error()}))}
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// resolveLangs normalizes the source and target languages from flags or
// config.
func resolveLangs(msgs *locale.Messages, opts *options, cfg *config.Config) (string, string, error) {
	from := opts.from
	if from == "" {
		from = cfg.From
	}
	to := opts.to
	if to == "" {
		to = cfg.To
	}
	for _, lang := range []*string{&from, &to} {
		normalized, err := langs.Normalize(*lang)
		if err != nil {
			return "", "", &exitError{code: exitUsage,
				err: errors.New(msgs.T("unsupported_language", map[string]any{"Error": err.Error()}))}
		}
		*lang = normalized
	}
	return from, to, nil
}

// readInput loads the whole input, from stdin when file is "-".
func readInput(cmd *cobra.Command, file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}

// timeout converts the config's timeout to a duration.
func timeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
