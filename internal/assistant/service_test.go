package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScriptedQuestions(t *testing.T) {
	svc := NewService(nil, "", 0, nil)

	for _, question := range DefaultSuggestions() {
		reply := svc.Resolve(question)
		assert.True(t, reply.Scripted, question)
		assert.NotEmpty(t, reply.Text, question)
		assert.NotEqual(t, DefaultFallback, reply.Text, question)
	}

	// Whitespace around the question does not break the lookup.
	reply := svc.Resolve("  How do I recycle this pack?  ")
	assert.True(t, reply.Scripted)
}

func TestResolveUnknownQuestionFallsBack(t *testing.T) {
	svc := NewService(nil, "", 0, nil)

	reply := svc.Resolve("What is the meaning of life?")
	assert.False(t, reply.Scripted)
	assert.Equal(t, DefaultFallback, reply.Text)
}

func TestAskDeliversAfterDelay(t *testing.T) {
	svc := NewService(map[string]string{"hi": "hello"}, "dunno", 30*time.Millisecond, nil)

	start := time.Now()
	reply, err := svc.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply.Text)
	assert.True(t, reply.Scripted)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestAskCancelledBeforeDelivery(t *testing.T) {
	svc := NewService(nil, "", time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var reply Reply
	var err error
	go func() {
		reply, err = svc.Ask(ctx, "Explain this product simply")
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after cancellation")
	}

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reply.Text, "cancelled ask must not deliver a reply")
}

func TestAskCancelledBeforeCall(t *testing.T) {
	svc := NewService(nil, "", 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Ask(ctx, "hi")
	require.ErrorIs(t, err, context.Canceled)
}
