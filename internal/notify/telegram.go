package notify

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxMessageLen keeps chunks under Telegram's 4096 character limit.
const MaxMessageLen = 4000

// BotSender is the part of the Telegram bot API the notifier uses.
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BotFactory creates a BotSender (allows mocking)
type BotFactory func(token, apiEndpoint string, client *http.Client) (BotSender, error)

var defaultBotFactory BotFactory = func(token, apiEndpoint string, client *http.Client) (BotSender, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, client)
	if err != nil {
		return nil, err
	}
	return bot, nil
}

// Telegram sends messages to a single chat. The bot is created on first use.
type Telegram struct {
	token   string
	chatID  string
	factory BotFactory

	mu  sync.Mutex
	bot BotSender
}

func NewTelegram(token, chatID string) *Telegram {
	return NewTelegramWithFactory(token, chatID, defaultBotFactory)
}

// NewTelegramWithFactory creates a Telegram notifier with a custom bot factory (for testing)
func NewTelegramWithFactory(token, chatID string, factory BotFactory) *Telegram {
	return &Telegram{token: token, chatID: chatID, factory: factory}
}

func (t *Telegram) Enabled() bool { return true }

func (t *Telegram) Notify(ctx context.Context, text string) error {
	chatID, err := strconv.ParseInt(t.chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", t.chatID, err)
	}

	bot, err := t.botInstance()
	if err != nil {
		return err
	}

	for _, chunk := range SplitMessage(text, MaxMessageLen) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := bot.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			return fmt.Errorf("send telegram message: %w", err)
		}
	}
	return nil
}

func (t *Telegram) botInstance() (BotSender, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bot != nil {
		return t.bot, nil
	}
	bot, err := t.factory(t.token, tgbotapi.APIEndpoint, http.DefaultClient)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	t.bot = bot
	log.Printf("[telegram] bot initialized for chat %s", t.chatID)
	return bot, nil
}

// SplitMessage cuts text into chunks of at most maxLen bytes, preferring the
// last newline before the limit. Hard cuts never split a UTF-8 sequence.
func SplitMessage(text string, maxLen int) []string {
	var chunks []string
	for len(text) > 0 {
		chunk := text
		if len(chunk) > maxLen {
			idx := strings.LastIndex(chunk[:maxLen], "\n")
			if idx > 0 {
				chunk = chunk[:idx]
			} else {
				chunk = chunk[:runeCut(chunk, maxLen)]
			}
		}
		text = strings.TrimPrefix(text[len(chunk):], "\n")
		chunks = append(chunks, chunk)
	}
	return chunks
}

// runeCut returns the largest cut point <= maxLen that starts a rune. A single
// rune wider than maxLen is kept whole.
func runeCut(s string, maxLen int) int {
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return cut
}
