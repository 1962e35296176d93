package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akarin-dev/fanyi/config"
	"github.com/akarin-dev/fanyi/locale"
)

// newInitCmd interactively collects API credentials and writes the key
// file.
func newInitCmd(msgs *locale.Messages) *cobra.Command {
	var keyFile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up API credentials interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := keyFile
			if path == "" {
				path = config.DefaultCredentialPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgs.T("init_intro", map[string]any{"Path": path}))

			questions := []*survey.Question{
				{
					Name:     "appid",
					Prompt:   &survey.Input{Message: msgs.T("init_prompt_appid", nil)},
					Validate: survey.Required,
				},
				{
					Name:     "appkey",
					Prompt:   &survey.Password{Message: msgs.T("init_prompt_appkey", nil)},
					Validate: survey.Required,
				},
			}
			answers := struct {
				AppID  string `survey:"appid"`
				AppKey string `survey:"appkey"`
			}{}
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			creds := &config.Credentials{AppID: answers.AppID, AppKey: answers.AppKey}
			if err := config.SaveCredentials(path, creds); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(),
				msgs.T("init_saved", map[string]any{"Path": path}))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFile, "key-file", "", "credentials file (default: $HOME/.baidufanyi_key)")
	return cmd
}
