package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"goldapple-bot/internal/logger"
	"goldapple-bot/internal/menu"
	"goldapple-bot/internal/session"
)

// handleContact stores the shared phone number. Only the first contact a
// user shares is kept.
func (b *Bot) handleContact(msg *tgbotapi.Message) {
	userID := msg.From.ID
	phone := msg.Contact.PhoneNumber
	if b.contacts.Set(userID, phone) {
		logger.Infof("stored contact for %d", userID)
		b.sendScreen(msg.Chat.ID,
			"✅ Спасибо! Ваш номер телефона сохранен.", mainMenuButtonKeyboard())
		return
	}
	b.sendScreen(msg.Chat.ID,
		"ℹ️ Ваш номер телефона уже сохранен.", mainMenuButtonKeyboard())
}

func (b *Bot) promptInput(chatID, userID int64, mode session.InputMode, prompt string) {
	b.sessions.SetInput(userID, mode)
	b.sendScreen(chatID, prompt, backToMainKeyboard())
}

// handleInputMessage validates text against the pending structured input
// mode. Invalid input keeps the mode active and re-prompts.
func (b *Bot) handleInputMessage(msg *tgbotapi.Message) {
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	switch b.sessions.Input(userID) {
	case session.InputOrderNumber:
		if !menu.ValidOrderNumber(text) {
			b.sendScreen(msg.Chat.ID,
				"⚠️ Неверный формат номера заказа.\n\nВведите номер в формате GA-XXXXXX, например GA-123456:",
				backToMainKeyboard())
			return
		}
		b.sessions.ClearInput(userID)
		b.sendScreen(msg.Chat.ID, fmt.Sprintf(
			"📦 <b>Заказ %s</b>\n\nСтатус: передан в доставку.\nОжидаемый срок: 1-3 рабочих дня.\n\nКурьер свяжется с вами перед доставкой.",
			text), mainMenuButtonKeyboard())

	case session.InputCancelOrderNumber:
		if !menu.ValidOrderNumber(text) {
			b.sendScreen(msg.Chat.ID,
				"⚠️ Неверный формат номера заказа.\n\nВведите номер в формате GA-XXXXXX, например GA-123456:",
				backToMainKeyboard())
			return
		}
		b.sessions.ClearInput(userID)
		b.mu.Lock()
		b.pendingCancel[userID] = text
		b.mu.Unlock()
		out := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(
			"Вы действительно хотите отменить заказ <b>%s</b>?", text))
		out.ParseMode = b.parseMode
		out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Да, отменить", "confirm_cancel"),
				tgbotapi.NewInlineKeyboardButtonData("❌ Нет", "decline_cancel"),
			),
		)
		if _, err := b.s.Send(out); err != nil {
			logger.Errorf("failed to send cancel confirmation to %d: %v", userID, err)
		}

	case session.InputCardNumber:
		if !menu.ValidCardNumber(text) {
			b.sendScreen(msg.Chat.ID,
				"⚠️ Неверный формат номера карты.\n\nВведите номер в формате XXXX-XXXX-XXXX-XXXX:",
				backToMainKeyboard())
			return
		}
		b.sessions.ClearInput(userID)
		b.sendScreen(msg.Chat.ID, fmt.Sprintf(
			"💳 <b>Карта %s</b>\n\nБаланс: 3 000 ₽.\nКарта активна, срок действия не ограничен.",
			text), mainMenuButtonKeyboard())

	default:
		b.sendScreen(msg.Chat.ID, menu.Main.Text, menu.Main.Keyboard())
	}
}

func (b *Bot) confirmCancelOrder(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	b.mu.Lock()
	order, ok := b.pendingCancel[userID]
	delete(b.pendingCancel, userID)
	b.mu.Unlock()

	if !ok {
		b.sendScreen(cb.Message.Chat.ID,
			"⚠️ Нет заказа, ожидающего отмены.", mainMenuButtonKeyboard())
		return
	}

	b.sendScreen(cb.Message.Chat.ID, fmt.Sprintf(
		"✅ Заявка на отмену заказа <b>%s</b> принята.\n\nДеньги вернутся на карту в течение 3-5 рабочих дней.",
		order), mainMenuButtonKeyboard())
}

func (b *Bot) declineCancelOrder(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	b.mu.Lock()
	delete(b.pendingCancel, userID)
	b.mu.Unlock()

	b.sendScreen(cb.Message.Chat.ID,
		"👌 Отмена заказа не выполнена. Заказ остается в работе.", mainMenuButtonKeyboard())
}
