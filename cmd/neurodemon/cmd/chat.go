package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the NeuroAI assistant",
	Long: `Open the assistant screen. Answers come from a built-in playbook of
penetration testing guidance; no network connection is made.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ok, err := ensureConsent()
	if err != nil || !ok {
		return err
	}
	return chat.Run(chat.CannedResponder{}, cfg.ReplyDelay())
}
