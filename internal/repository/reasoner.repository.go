package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"secscan/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

// ReasonerRepository is the transport to the external reasoning service. The
// orchestrator depends only on this contract: one textual prompt in, raw
// textual output out. Unreachable service, timeout and non-zero exit all
// surface as *domain.TransportError.
type ReasonerRepository interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

const defaultReasonerTimeout = 120 * time.Second

type subprocessReasonerHandler struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewSubprocessReasonerRepository invokes a local reasoning CLI, feeding the
// prompt on stdin and reading the response from stdout.
func NewSubprocessReasonerRepository(command string, args []string, timeout time.Duration) ReasonerRepository {
	if command == "" {
		command = "claude"
	}
	if len(args) == 0 {
		args = []string{"-p", "--output-format", "text"}
	}
	if timeout <= 0 {
		timeout = defaultReasonerTimeout
	}
	return subprocessReasonerHandler{
		Command: command,
		Args:    args,
		Timeout: timeout,
	}
}

func (h subprocessReasonerHandler) Invoke(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.Command, h.Args...)
	cmd.Stdin = strings.NewReader(prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &domain.TransportError{Err: fmt.Errorf("reasoner timed out after %s", h.Timeout)}
		}
		return "", &domain.TransportError{Err: fmt.Errorf("reasoner exited: %v: %s", err, firstChars(stderr.String(), 200))}
	}
	return strings.TrimSpace(stdout.String()), nil
}

func firstChars(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n]
	}
	return s
}

type gptReasonerHandler struct {
	GptClient *chatgpt.Client
	Timeout   time.Duration
}

// NewGptReasonerRepository talks to the OpenAI chat-completions API instead
// of a local CLI.
func NewGptReasonerRepository(apiKey string, timeout time.Duration) (ReasonerRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultReasonerTimeout
	}
	return gptReasonerHandler{
		GptClient: client,
		Timeout:   timeout,
	}, nil
}

func (h gptReasonerHandler) Invoke(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT4,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", &domain.TransportError{Err: err}
	}
	if len(res.Choices) == 0 {
		return "", &domain.TransportError{Err: errors.New("empty reasoner response")}
	}
	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
