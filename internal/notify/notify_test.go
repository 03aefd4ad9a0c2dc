package notify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Notifier = &Telegram{}
	_ Notifier = Noop{}
)

type mockBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (m *mockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.err != nil {
		return tgbotapi.Message{}, m.err
	}
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		m.sent = append(m.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func factoryFor(bot *mockBot, calls *int) BotFactory {
	return func(token, apiEndpoint string, client *http.Client) (BotSender, error) {
		*calls++
		return bot, nil
	}
}

func TestTelegram_Notify(t *testing.T) {
	bot := &mockBot{}
	calls := 0
	tg := NewTelegramWithFactory("token", "12345", factoryFor(bot, &calls))

	require.NoError(t, tg.Notify(context.Background(), "📊 Weekly Verdict\n\nSolid week"))
	require.NoError(t, tg.Notify(context.Background(), "second"))

	assert.Equal(t, 1, calls, "bot should be created once")
	require.Len(t, bot.sent, 2)
	assert.Equal(t, int64(12345), bot.sent[0].ChatID)
	assert.Equal(t, "📊 Weekly Verdict\n\nSolid week", bot.sent[0].Text)
	assert.True(t, tg.Enabled())
}

func TestTelegram_NotifyErrors(t *testing.T) {
	calls := 0

	bad := NewTelegramWithFactory("token", "not-a-number", factoryFor(&mockBot{}, &calls))
	assert.Error(t, bad.Notify(context.Background(), "x"))

	failing := NewTelegramWithFactory("token", "1", factoryFor(&mockBot{err: errors.New("boom")}, &calls))
	err := failing.Notify(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send telegram message")

	broken := NewTelegramWithFactory("token", "1", func(string, string, *http.Client) (BotSender, error) {
		return nil, errors.New("unauthorized")
	})
	assert.ErrorContains(t, broken.Notify(context.Background(), "x"), "create telegram bot")
}

func TestSplitMessage(t *testing.T) {
	assert.Nil(t, SplitMessage("", 10))
	assert.Equal(t, []string{"short"}, SplitMessage("short", 10))
	assert.Equal(t, []string{"aaaa", "bbbb"}, SplitMessage("aaaa\nbbbb", 6))
	assert.Equal(t, []string{"abcde", "fgh"}, SplitMessage("abcdefgh", 5))

	emoji := strings.Repeat("📊", 3)
	chunks := SplitMessage(emoji, 5)
	assert.Equal(t, []string{"📊", "📊", "📊"}, chunks)
	for _, chunk := range SplitMessage("x"+strings.Repeat("é", 10), 4) {
		assert.True(t, utf8.ValidString(chunk), "chunk %q", chunk)
		assert.LessOrEqual(t, len(chunk), 4)
	}
	assert.Equal(t, []string{"📊"}, SplitMessage("📊", 2))

	long := strings.Repeat("line of text\n", 600)
	for _, chunk := range SplitMessage(long, MaxMessageLen) {
		assert.LessOrEqual(t, len(chunk), MaxMessageLen)
	}
}

func TestNew(t *testing.T) {
	assert.False(t, New("", "1").Enabled())
	assert.False(t, New("token", "").Enabled())
	assert.True(t, New("token", "1").Enabled())
	assert.NoError(t, Noop{}.Notify(context.Background(), "dropped"))
}
