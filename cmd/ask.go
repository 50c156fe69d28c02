package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xunohq/support-chat/internal/config"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer questions from the FAQ knowledge base on the command line",
	Long: `Answers questions from the FAQ knowledge base without starting the
server. With no argument it reads questions interactively from stdin.
Responses are printed as the tagged JSON the widget consumes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Offline lookup never talks to the completion service.
		composer, sessions := createComposerFromConfig(cfg, nil)
		defer sessions.Stop()

		if len(args) > 0 {
			return printResponse(composer.AnswerQuestion(strings.Join(args, " ")))
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(os.Stderr, "\nYou: ")
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if q := strings.ToLower(question); q == "quit" || q == "exit" {
				break
			}
			fmt.Fprint(os.Stderr, "\nBot: ")
			if err := printResponse(composer.AnswerQuestion(question)); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

func printResponse(resp any) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(askCmd)
}
