package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/ai"
	"github.com/aipulse/aipulse-cli/internal/chat"
)

var (
	askSrc     sourceFlags
	askFlt     filterFlags
	askModel   string
	askHistory int
	askPreview int
	askTimeout int
)

var askCmd = &cobra.Command{
	Use:   "ask <question> [file.csv]",
	Short: "Ask the language model a question about the filtered survey data",
	Example: `  aipulse ask "How does trust in AI differ by education level?" survey.csv
  aipulse ask "Is adoption higher among employed respondents?" --db wh.sqlite --table ai_survey`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]
		// Topic gate first: an out-of-scope question never reaches the service.
		if err := chat.CheckTopic(question); err != nil {
			return err
		}
		if cfg == nil {
			return fmt.Errorf("configuration not loaded; run 'aipulse config set api_key <key>' first")
		}

		ds, _, err := loadFiltered(cmd.Context(), &askSrc, &askFlt, args[1:])
		if err != nil {
			return err
		}
		sess, err := chat.LoadSession(cfg.SessionsDir)
		if err != nil {
			return err
		}
		if ds.Name != "" {
			sess.Source = ds.Name
		}

		opt := chat.PromptOptions{
			HistoryWindow: cfg.HistoryWindow,
			PreviewRows:   cfg.PreviewRows,
			TokenLimit:    cfg.PromptTokenLimit,
		}
		if askHistory > 0 {
			opt.HistoryWindow = askHistory
		}
		if askPreview > 0 {
			opt.PreviewRows = askPreview
		}
		msgs := chat.BuildMessages(ds, sess, question, opt)

		model := cfg.Model
		if askModel != "" {
			model = askModel
		}
		client := ai.NewClientWithBaseURL(
			cfg.APIKey,
			time.Duration(cfg.HTTPTimeoutSec)*time.Second,
			cfg.RetryMaxAttempts,
			time.Duration(cfg.RetryBaseDelayMs)*time.Millisecond,
			time.Duration(cfg.RetryMaxDelayMs)*time.Millisecond,
			cfg.BaseURL,
		)
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(askTimeout)*time.Second)
		defer cancel()

		resp, err := client.Complete(ctx, ai.CompletionRequest{
			Model:       model,
			Messages:    msgs,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			// The failed exchange is still part of the history.
			sess.Append(question, chat.FormatAnswerError(err), true)
			if saveErr := sess.Save(); saveErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: save session: %v\n", saveErr)
			}
			return formatServiceError(err)
		}
		answer := resp.Text()
		sess.Append(question, answer, false)
		if err := sess.Save(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: save session: %v\n", err)
		}
		if debug && resp.Usage.TotalTokens > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "tokens: prompt=%d completion=%d\n", resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
		}
		fmt.Println(answer)
		return nil
	},
}

// formatServiceError keeps typed API errors readable at the CLI boundary.
func formatServiceError(err error) error {
	var auth *ai.AuthError
	if errors.As(err, &auth) {
		return fmt.Errorf("the model service rejected the API key: %w", err)
	}
	var rate *ai.RateLimitError
	if errors.As(err, &rate) {
		return fmt.Errorf("the model service is rate limiting requests: %w", err)
	}
	return fmt.Errorf("the model service did not return an answer: %w", err)
}

func init() {
	rootCmd.AddCommand(askCmd)
	askSrc.register(askCmd)
	askFlt.register(askCmd)
	askCmd.Flags().StringVar(&askModel, "model", "", "model to use (overrides config)")
	askCmd.Flags().IntVar(&askHistory, "history", 0, "number of past exchanges to include (overrides config)")
	askCmd.Flags().IntVar(&askPreview, "preview-rows", 0, "rows of filtered data in the prompt (overrides config)")
	askCmd.Flags().IntVar(&askTimeout, "timeout-sec", 180, "overall timeout for the completion call")
}
