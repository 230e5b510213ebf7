// Package telegram sends operational notices to an admin chat. It is
// entirely optional and never touches the chat protocol itself.
package telegram

import (
	"fmt"
	"log"
	"sync"
	"time"

	"anonchat/backend/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier posts diagnostics to a single admin chat. It implements
// engine.DiagnosticSink.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	chatID int64

	mu        sync.Mutex
	lastStale time.Time
}

// NewNotifier authorizes the bot and binds it to the admin chat.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("ops notifier authorized as %s", bot.Self.UserName)

	return &Notifier{BotAPI: bot, chatID: chatID}, nil
}

// Startup announces that the server came up.
func (n *Notifier) Startup() {
	n.post("anonchat backend started")
}

// StalePartnerDropped reports a stale queue entry that was discarded
// during pairing. Notices are rate-limited so a burst of disconnects
// does not flood the admin chat.
func (n *Notifier) StalePartnerDropped(requesterID, staleID string) {
	n.mu.Lock()
	if time.Since(n.lastStale) < config.StaleNoticeInterval {
		n.mu.Unlock()
		return
	}
	n.lastStale = time.Now()
	n.mu.Unlock()

	n.post(fmt.Sprintf("stale queue entry %s dropped while pairing %s", staleID, requesterID))
}

func (n *Notifier) post(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("failed to send ops notice: %v", err)
	}
}
