package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evanpersinger/File-Converter/internal/agent"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

var agentCmd = &cobra.Command{
	Use:   "agent [request]",
	Short: "Convert files through a natural-language assistant",
	Long: `agent answers conversion requests in plain language, inspecting the
input directory and calling the converters as tools. With a request
argument it answers once; with no arguments it starts an interactive
session. Conversation history is stored in SQLite so a session can be
resumed with --session.

Requires an OpenAI API key in .secrets/openai-api-key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs, err := resolveDirs(cmd)
		if err != nil {
			return err
		}

		model, _ := cmd.Flags().GetString("model")
		if model == "" {
			model = viper.GetString("agent-model")
		}
		sessionID, _ := cmd.Flags().GetString("session")
		dbPath, _ := cmd.Flags().GetString("session-db")
		if dbPath == "" {
			dbPath = viper.GetString("session-db")
		}
		if dbPath == "" {
			dbPath = dirs.OutputPath("sessions.db")
		}
		key := secretDefault("openai-api-key", viper.GetString("openai-api-key"))

		store, err := agent.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		pandoc, _ := tool.Find("pandoc")
		wkhtml, _ := tool.Find("wkhtmltopdf")
		jupyter, _ := tool.Find("jupyter")
		tools := agent.BuildRegistry(agent.Deps{
			Dirs:    dirs,
			Pandoc:  runnerOrNil(pandoc),
			Wkhtml:  runnerOrNil(wkhtml),
			Jupyter: runnerOrNil(jupyter),
		})

		a, err := agent.New(types.AgentConfig{
			AIConfig:  types.AIConfig{Model: model, APIKey: key},
			SessionDB: dbPath,
			SessionID: sessionID,
		}, store, tools)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			answer, err := a.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		}
		return a.Repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	agentCmd.Flags().String("model", "", "chat model identifier (default: gpt-4o-mini)")
	agentCmd.Flags().String("session", "default", "session id for conversation history")
	agentCmd.Flags().String("session-db", "", "SQLite file for session history (default: output/sessions.db)")

	rootCmd.AddCommand(agentCmd)
}
