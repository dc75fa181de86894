package cli

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/spf13/cobra"
)

var chatSession string

var chatCmd = &cobra.Command{
	Use:   "chat <message...>",
	Short: "Send a message to the learning assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatSession, "session", "", "chat session to continue")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	initEngine()
	ctx := cmd.Context()

	st := toolutil.OpenSession(ctx, chatSession)
	history, reply, err := learn.NewChat(nil).Exchange(st.ChatMessages, strings.Join(args, " "))
	if err != nil {
		return err
	}
	st.ChatMessages = history
	engine.SessionSave(ctx, st)

	w := cmd.OutOrStdout()
	if jsonOut {
		return writeJSON(w, engine.ChatSendOutput{
			SessionID: st.ID,
			Reply:     reply,
			Messages:  learn.LastMessages(history, learn.DefaultHistory),
		})
	}
	s := defaultStyles()
	_, err = fmt.Fprintf(w, "%s %s\n", s.Label.Render("assistant:"), reply)
	return err
}
