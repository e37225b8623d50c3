package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/campusguide/mock"
	cgslog "github.com/fwojciec/campusguide/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGuide_Ask(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Guide{
		AskFn: func(context.Context, string) (string, error) {
			return "Head to the cafeteria.", nil
		},
	}

	guide := cgslog.NewLoggingGuide(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	answer, err := guide.Ask(context.Background(), "where to eat?")

	require.NoError(t, err)
	assert.Equal(t, "Head to the cafeteria.", answer)
	output := buf.String()
	assert.Contains(t, output, "guide ask")
	assert.Contains(t, output, "question_len=13")
	assert.Contains(t, output, "answer_len=22")
	assert.NotContains(t, output, "where to eat")
}
