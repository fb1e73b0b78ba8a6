// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/evanpersinger/File-Converter/internal/httputil"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

const (
	defaultModel    = "gpt-4o-mini"
	defaultMaxTurns = 10

	instructions = "You are a file conversion assistant. The user keeps source " +
		"files in an input directory; converted files go to an output " +
		"directory. Use the available tools to inspect and convert files. " +
		"When a request is ambiguous, list the input files first. Report " +
		"the output path of every file you convert."
)

// Agent answers conversion requests in natural language, calling the
// registered tools as needed and persisting the conversation.
type Agent struct {
	ai       openai.Client
	store    *Store
	tools    []ToolDef
	model    string
	session  string
	maxTurns int
}

// New builds an agent over a session store and tool registry.
func New(cfg types.AgentConfig, store *Store, tools []ToolDef) (*Agent, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no OpenAI API key configured")
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	session := cfg.SessionID
	if session == "" {
		session = "default"
	}

	ai := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{
			Transport: &httputil.RetryTransport{MaxRetries: cfg.MaxRetries},
		}),
	)
	return &Agent{
		ai:       ai,
		store:    store,
		tools:    tools,
		model:    model,
		session:  session,
		maxTurns: maxTurns,
	}, nil
}

// Ask runs one request through the model, dispatching tool calls until
// the model produces a final answer or the turn limit is hit. The user
// request and final answer are persisted to the session.
func (a *Agent) Ask(ctx context.Context, request string) (string, error) {
	history, err := a.store.History(a.session)
	if err != nil {
		return "", err
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(instructions),
	}
	for _, m := range history {
		switch m.Role {
		case "user":
			messages = append(messages, openai.UserMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(request))

	toolParams := make([]openai.ChatCompletionToolParam, len(a.tools))
	for i, t := range a.tools {
		toolParams[i] = openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  t.Parameters,
			},
		}
	}

	var answer string
	for turn := 0; turn < a.maxTurns; turn++ {
		resp, err := a.ai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    a.model,
			Messages: messages,
			Tools:    toolParams,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("model returned no choices")
		}
		msg := resp.Choices[0].Message

		if len(msg.ToolCalls) == 0 {
			answer = msg.Content
			break
		}

		messages = append(messages, msg.ToParam())
		for _, tc := range msg.ToolCalls {
			result := a.dispatch(tc.Function.Name, tc.Function.Arguments)
			messages = append(messages, openai.ToolMessage(result, tc.ID))
		}
	}
	if answer == "" {
		return "", fmt.Errorf("no final answer after %d turns", a.maxTurns)
	}

	if err := a.store.Append(a.session, "user", request); err != nil {
		return "", err
	}
	if err := a.store.Append(a.session, "assistant", answer); err != nil {
		return "", err
	}
	return answer, nil
}

// dispatch finds the named tool and invokes it with the JSON-encoded
// arguments the model supplied.
func (a *Agent) dispatch(name, rawArgs string) string {
	for _, t := range a.tools {
		if t.Name != name {
			continue
		}
		args := map[string]any{}
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return fmt.Sprintf("error: invalid tool arguments: %v", err)
			}
		}
		return t.Call(args)
	}
	return fmt.Sprintf("error: unknown tool %q", name)
}

// Repl runs an interactive loop until EOF or a quit command.
func (a *Agent) Repl(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Converter Agent: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Session ended")
			return nil
		}

		answer, err := a.Ask(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, answer)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nSession ended")
	return nil
}
