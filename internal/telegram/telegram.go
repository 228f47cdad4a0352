package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/smagulov/flightlog/internal/bot"
)

// Bot is the long-polling Telegram transport in front of a router.
type Bot struct {
	api    *tgbotapi.BotAPI
	router *bot.Router
}

func New(token string, router *bot.Router) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	return &Bot{api: api, router: router}, nil
}

var menu = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(bot.LabelNewFlight),
		tgbotapi.NewKeyboardButton(bot.LabelStats),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(bot.LabelExport),
		tgbotapi.NewKeyboardButton(bot.LabelDeleteLast),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(bot.LabelDeleteAll),
	),
)

// Run polls for updates until the process exits. Updates are handled
// one at a time so a user's messages keep their order.
func (b *Bot) Run() error {
	log.Printf("Authorized as @%s", b.api.Self.UserName)

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	for update := range b.api.GetUpdatesChan(cfg) {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		chatID := update.Message.Chat.ID
		for _, reply := range b.router.Handle(chatID, update.Message.Text) {
			if err := b.send(chatID, reply); err != nil {
				log.Printf("failed to send to %d: %v", chatID, err)
			}
		}
	}
	return nil
}

func (b *Bot) send(chatID int64, reply bot.Reply) error {
	if reply.Document != nil {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
			Name:  reply.Document.Name,
			Bytes: reply.Document.Data,
		})
		_, err := b.api.Send(doc)
		return err
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if reply.ShowMenu {
		msg.ReplyMarkup = menu
	}
	_, err := b.api.Send(msg)
	return err
}
