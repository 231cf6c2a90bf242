// Package telegram hosts the bot loop and update routing: static menus,
// structured input, the recommendation flow and the operator relay.
package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"goldapple-bot/internal/contact"
	"goldapple-bot/internal/logger"
	"goldapple-bot/internal/menu"
	"goldapple-bot/internal/recommend"
	"goldapple-bot/internal/session"
	"goldapple-bot/internal/storage"
)

type Bot struct {
	api            *tgbotapi.BotAPI
	s              sender
	operatorChatID int64
	sessions       *session.Manager
	contacts       *contact.Registry
	recommender    *recommend.Service
	criteria       *recommend.CriteriaStore
	recorder       storage.Recorder
	parseMode      string

	mu sync.Mutex
	// replyTarget is the user the operator's next plain message goes to,
	// set by the Reply button. Zero means no pinned target.
	replyTarget int64
	// pendingForce holds operator message bodies awaiting the force-send
	// confirmation, by target user.
	pendingForce map[int64]string
	// pendingCancel holds order numbers awaiting the cancel confirmation.
	pendingCancel map[int64]string
}

func New(
	botToken string,
	operatorChatID int64,
	sessions *session.Manager,
	contacts *contact.Registry,
	recommender *recommend.Service,
	criteria *recommend.CriteriaStore,
	recorder storage.Recorder,
	parseMode string,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:            api,
		s:              botAPISender{api: api},
		operatorChatID: operatorChatID,
		sessions:       sessions,
		contacts:       contacts,
		recommender:    recommender,
		criteria:       criteria,
		recorder:       recorder,
		parseMode:      parseMode,
		pendingForce:   make(map[int64]string),
		pendingCancel:  make(map[int64]string),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleIncomingMessage(update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.handleCallback(update.CallbackQuery)
				continue
			}
		}
	}
}

// handleIncomingMessage routes one message. A user inside a live support
// session short-circuits everything else: the text goes to the operator.
func (b *Bot) handleIncomingMessage(msg *tgbotapi.Message) {
	if msg.Contact != nil {
		b.handleContact(msg)
		return
	}
	if msg.Chat.ID == b.operatorChatID {
		b.handleOperatorMessage(msg)
		return
	}
	if msg.Text == "" {
		return
	}

	userID := msg.From.ID
	logger.Infof("incoming message from %d (@%s): %q", userID, msg.From.UserName, msg.Text)

	switch b.sessions.State(userID) {
	case session.StateAwaitingName:
		b.handleSupportName(msg)
		return
	case session.StateInChat, session.StateWaitingFollowup:
		b.relayUserMessage(msg)
		return
	}

	if b.sessions.Input(userID) != session.InputNone {
		b.handleInputMessage(msg)
		return
	}

	switch strings.TrimSpace(msg.Text) {
	case "/start":
		b.sendScreen(msg.Chat.ID, greeting(msg.From.FirstName), menu.Main.Keyboard())
	default:
		b.sendScreen(msg.Chat.ID, menu.Main.Text, menu.Main.Keyboard())
	}
}

func greeting(firstName string) string {
	if firstName == "" {
		return "👋 Привет!\n\nЯ бот-помощник Gold Apple. Чем могу помочь?"
	}
	return "👋 Привет, " + firstName + "!\n\nЯ бот-помощник Gold Apple. Чем могу помочь?"
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	data := cb.Data
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	logger.Infof("callback %q from %d", data, userID)

	switch {
	case data == "noop":
		// group headers in criteria keyboards
	case data == "back_to_main":
		b.backToMain(chatID, userID)
	case data == "support_request":
		b.startSupportChat(cb)
	case data == "end_chat":
		b.endChatFromUser(cb)
	case data == "more_questions":
		b.moreQuestions(cb)
	case strings.HasPrefix(data, "force_send_"):
		b.forceSend(cb)
	case strings.HasPrefix(data, "cancel_send_"):
		b.cancelSend(cb)
	case strings.HasPrefix(data, "reply_"):
		b.pinReplyTarget(cb)
	case strings.HasPrefix(data, "op_end_"):
		b.operatorEndChatButton(cb)
	case data == "product_recommendations", data == "back_to_categories":
		b.startRecommendations(chatID)
	case strings.HasPrefix(data, "category_"):
		b.selectCategory(cb)
	case strings.HasPrefix(data, "criteria_"):
		b.toggleCriteria(cb)
	case strings.HasPrefix(data, "reset_criteria_"):
		b.resetCriteria(cb)
	case strings.HasPrefix(data, "show_recommendations_"):
		b.showRecommendations(cb)
	case strings.HasPrefix(data, "refresh_recommendations_"):
		b.refreshRecommendations(cb)
	case data == "enter_order_number":
		b.promptInput(chatID, userID, session.InputOrderNumber,
			"Пожалуйста, введите номер вашего заказа в формате GA-XXXXXX:")
	case data == "proceed_with_cancel":
		b.promptInput(chatID, userID, session.InputCancelOrderNumber,
			"Для отмены заказа, пожалуйста, введите номер заказа в формате GA-XXXXXX:")
	case data == "gift_check_balance":
		b.promptInput(chatID, userID, session.InputCardNumber,
			"Пожалуйста, введите номер вашей подарочной карты в формате XXXX-XXXX-XXXX-XXXX:")
	case data == "confirm_cancel":
		b.confirmCancelOrder(cb)
	case data == "decline_cancel":
		b.declineCancelOrder(cb)
	default:
		if s, ok := menu.Lookup(data); ok {
			b.sendScreen(chatID, s.Text, s.Keyboard())
			return
		}
		logger.Warnf("unknown callback data %q from %d", data, userID)
	}
}

func (b *Bot) backToMain(chatID, userID int64) {
	// Cancel a support request stuck at the name step and drop any
	// pending structured input.
	if b.sessions.State(userID) == session.StateAwaitingName {
		b.sessions.Close(userID)
	}
	b.sessions.ClearInput(userID)
	b.sendScreen(chatID, menu.Main.Text, menu.Main.Keyboard())
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = b.parseMode
	if _, err := b.s.Send(msg); err != nil {
		logger.Errorf("failed to send message to %d: %v", chatID, err)
	}
}

func (b *Bot) sendScreen(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = b.parseMode
	msg.ReplyMarkup = kb
	if _, err := b.s.Send(msg); err != nil {
		logger.Errorf("failed to send screen to %d: %v", chatID, err)
	}
}

func backToMainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", "back_to_main"),
		),
	)
}
