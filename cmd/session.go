package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/chat"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset the chat session",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the recorded exchanges of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		sess, err := chat.LoadSession(cfg.SessionsDir)
		if err != nil {
			return err
		}
		if len(sess.Exchanges) == 0 {
			fmt.Println("No exchanges recorded")
			return nil
		}
		if sess.Source != "" {
			fmt.Printf("Source: %s\n", sess.Source)
		}
		for i, ex := range sess.Exchanges {
			status := ""
			if ex.Failed {
				status = " (failed)"
			}
			fmt.Printf("%d. Q: %s\n   A%s: %s\n", i+1, ex.Question, status, ex.Answer)
		}
		return nil
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the chat history immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		sess, err := chat.LoadSession(cfg.SessionsDir)
		if err != nil {
			return err
		}
		sess.Reset()
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Println("✓ Session cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}
