package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"secscan/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_SubprocessReasonerRepository(t *testing.T) {
	t.Run("reads stdout and trims whitespace", func(t *testing.T) {
		reasoner := NewSubprocessReasonerRepository("sh", []string{"-c", `echo '{"verdict": "Mixed Signals"}'`}, 0)
		out, err := reasoner.Invoke(context.Background(), "prompt")
		require.NoError(t, err)
		require.Equal(t, `{"verdict": "Mixed Signals"}`, out)
	})

	t.Run("forwards the prompt on stdin", func(t *testing.T) {
		reasoner := NewSubprocessReasonerRepository("cat", []string{"-"}, 0)
		out, err := reasoner.Invoke(context.Background(), "analyze this filing")
		require.NoError(t, err)
		require.Equal(t, "analyze this filing", out)
	})

	t.Run("non-zero exit is a transport error", func(t *testing.T) {
		reasoner := NewSubprocessReasonerRepository("sh", []string{"-c", "echo boom >&2; exit 3"}, 0)
		_, err := reasoner.Invoke(context.Background(), "prompt")
		require.Error(t, err)

		transportErr := &domain.TransportError{}
		require.True(t, errors.As(err, &transportErr))
		require.Contains(t, transportErr.Error(), "boom")
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		reasoner := NewSubprocessReasonerRepository("sleep", []string{"5"}, 50*time.Millisecond)
		_, err := reasoner.Invoke(context.Background(), "prompt")
		require.Error(t, err)

		transportErr := &domain.TransportError{}
		require.True(t, errors.As(err, &transportErr))
		require.Contains(t, transportErr.Error(), "timed out")
	})

	t.Run("missing binary is a transport error", func(t *testing.T) {
		reasoner := NewSubprocessReasonerRepository("definitely-not-a-real-binary", nil, 0)
		_, err := reasoner.Invoke(context.Background(), "prompt")
		require.Error(t, err)

		transportErr := &domain.TransportError{}
		require.True(t, errors.As(err, &transportErr))
	})
}
