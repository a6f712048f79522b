package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// channelSender hands every delivery to the test goroutine and fails on
// demand.
type channelSender struct {
	sent chan EmailMessage
	fail map[string]bool
}

func newChannelSender() *channelSender {
	return &channelSender{
		sent: make(chan EmailMessage, 10),
		fail: map[string]bool{},
	}
}

func (s *channelSender) Send(_ context.Context, msg EmailMessage) error {
	s.sent <- msg
	if s.fail[msg.To] {
		return errors.New("transport down")
	}
	return nil
}

func waitFor(t *testing.T, ch chan EmailMessage) EmailMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no email delivered in time")
		return EmailMessage{}
	}
}

func TestDispatcherDeliversRenderedMail(t *testing.T) {
	sender := newChannelSender()
	d := NewDispatcher(sender, zap.NewNop())

	d.Dispatch(Event{
		Kind:        EventConfirmed,
		To:          "maria@example.com",
		ClientName:  "Maria Silva",
		ServiceName: "Limpeza de Pele",
		Date:        "2026-09-10",
		Time:        "10:00",
	})

	msg := waitFor(t, sender.sent)
	assert.Equal(t, "maria@example.com", msg.To)
	assert.Equal(t, "Agendamento Confirmado - Belleza Estética", msg.Subject)
	assert.Contains(t, msg.HTML, "Maria Silva")
	assert.Contains(t, msg.HTML, "10:00")
	assert.Contains(t, msg.HTML, "Limpeza de Pele")
}

func TestDispatcherRescheduledMailShowsBothSlots(t *testing.T) {
	sender := newChannelSender()
	d := NewDispatcher(sender, zap.NewNop())

	d.Dispatch(Event{
		Kind:        EventRescheduled,
		To:          "maria@example.com",
		ClientName:  "Maria Silva",
		ServiceName: "Manicure",
		Date:        "2026-09-12",
		Time:        "15:00",
		OldDate:     "2026-09-10",
		OldTime:     "10:00",
	})

	msg := waitFor(t, sender.sent)
	assert.Contains(t, msg.Subject, "Reagendado")
	assert.Contains(t, msg.HTML, "2026-09-10")
	assert.Contains(t, msg.HTML, "2026-09-12")
}

func TestDispatcherSurvivesTransportFailure(t *testing.T) {
	sender := newChannelSender()
	sender.fail["down@example.com"] = true
	d := NewDispatcher(sender, zap.NewNop())

	// A failed delivery must not take the worker down with it.
	d.Dispatch(Event{Kind: EventCancelled, To: "down@example.com", ClientName: "A"})
	d.Dispatch(Event{Kind: EventConfirmed, To: "up@example.com", ClientName: "B"})

	first := waitFor(t, sender.sent)
	assert.Equal(t, "down@example.com", first.To)

	second := waitFor(t, sender.sent)
	assert.Equal(t, "up@example.com", second.To)
}

func TestDispatcherSkipsEventsWithoutRecipient(t *testing.T) {
	sender := newChannelSender()
	d := NewDispatcher(sender, zap.NewNop())

	d.Dispatch(Event{Kind: EventConfirmed, To: ""})
	d.Dispatch(Event{Kind: EventConfirmed, To: "maria@example.com"})

	msg := waitFor(t, sender.sent)
	assert.Equal(t, "maria@example.com", msg.To)
}

func TestRenderUnknownKind(t *testing.T) {
	subject, html := render(Event{Kind: EventKind("push")})
	assert.Empty(t, subject)
	assert.Empty(t, html)
}

func TestRenderEscapesClientInput(t *testing.T) {
	_, html := render(Event{
		Kind:       EventConfirmed,
		ClientName: `<script>alert("x")</script>`,
	})
	require.NotEmpty(t, html)
	assert.False(t, strings.Contains(html, "<script>"))
}
