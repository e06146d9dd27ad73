package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arumata/solidnotify/internal/app"
	"github.com/arumata/solidnotify/internal/usecase"
)

func newSendCmd(cfg *usecase.Config, exitCode *int) *cobra.Command {
	var (
		channel   string
		recipient string
	)

	cmd := &cobra.Command{
		Use:   "send --to <recipient> <content...>",
		Short: "Send one notification",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			st, err := prepare(ctx, cfg)
			if err != nil {
				handleCmdError(exitCode, err)
				return
			}
			ch, err := usecase.ParseChannel(channel)
			if err != nil {
				handleCmdError(exitCode, err)
				return
			}
			deps, err := app.NewDependencies(ch, st.runtime, cmd.OutOrStdout(), st.recorder, st.logger)
			if err != nil {
				handleCmdError(exitCode, err)
				return
			}
			service := usecase.NewNotificationService(deps.Notifier, deps.Logger)
			err = service.SendNotification(ctx, recipient, strings.Join(args, " "))
			_ = st.recorder.Report(ctx, st.logger)
			handleCmdError(exitCode, err)
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "c", usecase.ChannelEmail.String(), "delivery channel: email or sms")
	cmd.Flags().StringVar(&recipient, "to", "", "recipient name")
	_ = cmd.MarkFlagRequired("to")

	_ = cmd.RegisterFlagCompletionFunc("channel",
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, c := range usecase.Channels() {
				names = append(names, c.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
	)

	return cmd
}
