package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"goldapple-bot/internal/logger"
	"goldapple-bot/internal/session"
	"goldapple-bot/internal/storage"
)

var errBadReplyFormat = errors.New("operator reply must be \"<user id> <text>\"")

// startSupportChat handles the "Связаться с оператором" button.
func (b *Bot) startSupportChat(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	switch b.sessions.State(userID) {
	case session.StateInChat, session.StateWaitingFollowup:
		b.sendScreen(chatID,
			"⚠️ Вы уже подключены к чату с оператором.\n\nПросто напишите ваше сообщение.",
			endChatKeyboard())
		return
	case session.StateAwaitingName:
		b.sendScreen(chatID, "Пожалуйста, напишите, как к вам обращаться:", backToMainKeyboard())
		return
	}

	b.sessions.Begin(userID)
	b.sessions.ClearInput(userID)
	b.sendScreen(chatID, "Пожалуйста, напишите, как к вам обращаться:", backToMainKeyboard())
}

// handleSupportName receives the user's name and opens the chat.
func (b *Bot) handleSupportName(msg *tgbotapi.Message) {
	userID := msg.From.ID
	name := strings.TrimSpace(msg.Text)
	if name == "" {
		b.sendScreen(msg.Chat.ID, "Пожалуйста, напишите, как к вам обращаться:", backToMainKeyboard())
		return
	}

	b.sessions.Activate(userID, name)

	b.sendScreen(msg.Chat.ID,
		fmt.Sprintf("✅ %s, вы подключены к чату с оператором.\n\nОпишите ваш вопрос одним сообщением, и оператор ответит вам здесь.", name),
		endChatKeyboard())

	b.notifyOperatorNewChat(userID, name, profileName(msg.From), msg.From.UserName)
}

func profileName(u *tgbotapi.User) string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (b *Bot) notifyOperatorNewChat(userID int64, name, profile, username string) {
	if username == "" {
		username = "нет"
	} else {
		username = "@" + username
	}
	if profile == "" {
		profile = "не указано"
	}
	phone := b.contacts.Get(userID)
	if phone == "" {
		phone = "не указан"
	}

	text := fmt.Sprintf(
		"👤 <b>Новый запрос в техподдержку</b>\n\n"+
			"• ID: <code>%d</code>\n"+
			"• Имя: %s\n"+
			"• Профиль: %s\n"+
			"• Username: %s\n"+
			"• Телефон: %s\n\n"+
			"Для ответа нажмите кнопку ниже или используйте формат:\n"+
			"<code>%d Ваше сообщение</code>\n"+
			"Для завершения чата: /end %d",
		userID, name, profile, username, phone, userID, userID)

	out := tgbotapi.NewMessage(b.operatorChatID, text)
	out.ParseMode = b.parseMode
	out.ReplyMarkup = operatorReplyKeyboard(userID)
	if _, err := b.s.Send(out); err != nil {
		logger.Errorf("failed to notify operator about new chat with %d: %v", userID, err)
	}
}

// relayUserMessage forwards an in-chat user message to the operator.
func (b *Bot) relayUserMessage(msg *tgbotapi.Message) {
	userID := msg.From.ID
	b.sessions.SetState(userID, session.StateInChat)

	name := b.sessions.Name(userID)
	if name == "" {
		name = msg.From.FirstName
	}

	text := fmt.Sprintf("📩 <b>Сообщение от пользователя</b> %s (ID: <code>%d</code>):\n\n%s",
		name, userID, msg.Text)
	out := tgbotapi.NewMessage(b.operatorChatID, text)
	out.ParseMode = b.parseMode
	out.ReplyMarkup = operatorReplyKeyboard(userID)
	if _, err := b.s.Send(out); err != nil {
		logger.Errorf("failed to relay message from %d to operator: %v", userID, err)
		b.sendMessage(msg.Chat.ID,
			"⚠️ Произошла ошибка при отправке вашего сообщения оператору. Попробуйте еще раз.")
		return
	}

	b.record(userID, storage.DirUserToOperator, msg.Text)
	b.sendScreen(msg.Chat.ID,
		"✅ Ваше сообщение отправлено оператору. Ожидайте ответа.",
		endChatKeyboard())
}

// handleOperatorMessage routes a message typed in the operator chat: the
// /end command, a reply to the pinned target, or the legacy "<id> <text>"
// form.
func (b *Bot) handleOperatorMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if strings.HasPrefix(text, "/end") {
		b.operatorEndChat(text)
		return
	}
	if strings.HasPrefix(text, "/history") {
		b.operatorHistory(text)
		return
	}
	if strings.HasPrefix(text, "/") {
		return
	}

	b.mu.Lock()
	target := b.replyTarget
	b.replyTarget = 0
	b.mu.Unlock()

	if target != 0 {
		b.deliverOperatorReply(target, text)
		return
	}

	userID, body, err := parseOperatorReply(text)
	if err != nil {
		b.sendMessage(b.operatorChatID,
			"⚠️ Неверный формат. Используйте:\n<code>[ID пользователя] [сообщение]</code>")
		return
	}

	if !b.sessions.Active(userID) {
		b.mu.Lock()
		b.pendingForce[userID] = body
		b.mu.Unlock()

		out := tgbotapi.NewMessage(b.operatorChatID, fmt.Sprintf(
			"❗ Пользователь %d не активен в чате поддержки.\n\nОтправить сообщение принудительно?", userID))
		out.ParseMode = b.parseMode
		id := strconv.FormatInt(userID, 10)
		out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Да", "force_send_"+id),
				tgbotapi.NewInlineKeyboardButtonData("❌ Нет", "cancel_send_"+id),
			),
		)
		if _, err := b.s.Send(out); err != nil {
			logger.Errorf("failed to send force-send prompt: %v", err)
		}
		return
	}

	b.deliverOperatorReply(userID, body)
}

// parseOperatorReply splits "<user id> <text>" on the first whitespace
// run, so the id and the body may be separated by spaces, tabs or a
// newline.
func parseOperatorReply(text string) (int64, string, error) {
	cut := strings.IndexFunc(text, unicode.IsSpace)
	if cut < 0 {
		return 0, "", errBadReplyFormat
	}
	idPart, body := text[:cut], text[cut:]
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", errBadReplyFormat
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, "", errBadReplyFormat
	}
	return userID, body, nil
}

// deliverOperatorReply sends the operator's text to the user and confirms
// delivery back in the operator chat.
func (b *Bot) deliverOperatorReply(userID int64, body string) {
	out := tgbotapi.NewMessage(userID, "👨‍💼 <b>Оператор:</b> "+body)
	out.ParseMode = b.parseMode
	out.ReplyMarkup = followupKeyboard()
	if _, err := b.s.Send(out); err != nil {
		logger.Errorf("failed to deliver operator reply to %d: %v", userID, err)
		b.sendMessage(b.operatorChatID,
			fmt.Sprintf("⚠️ Ошибка при отправке сообщения пользователю %d.", userID))
		return
	}

	b.sessions.SetState(userID, session.StateWaitingFollowup)
	b.record(userID, storage.DirOperatorToUser, body)
	b.sendMessage(b.operatorChatID,
		fmt.Sprintf("✅ Сообщение успешно отправлено пользователю %d.", userID))
}

// operatorEndChat handles "/end <id>" in the operator chat.
func (b *Bot) operatorEndChat(text string) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		b.sendMessage(b.operatorChatID,
			"⚠️ Ошибка! Используйте команду /end [ID пользователя].")
		return
	}
	userID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || userID <= 0 {
		b.sendMessage(b.operatorChatID,
			"⚠️ Ошибка! Используйте команду /end [ID пользователя].")
		return
	}
	b.closeChatByOperator(userID)
}

func (b *Bot) closeChatByOperator(userID int64) {
	if !b.sessions.Close(userID) {
		b.sendMessage(b.operatorChatID,
			fmt.Sprintf("❗ Пользователь %d не активен в чате поддержки.", userID))
		return
	}

	b.mu.Lock()
	if b.replyTarget == userID {
		b.replyTarget = 0
	}
	delete(b.pendingForce, userID)
	b.mu.Unlock()

	b.sendMessage(userID, "📴 Чат с оператором завершен.\n\nСпасибо за обращение!")
	b.sendMessage(b.operatorChatID,
		fmt.Sprintf("✅ Чат с пользователем %d завершен.", userID))
}

// operatorHistory handles "/history <id>": the last relayed messages for
// one user, read back from the transcript.
func (b *Bot) operatorHistory(text string) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		b.sendMessage(b.operatorChatID,
			"⚠️ Ошибка! Используйте команду /history [ID пользователя].")
		return
	}
	userID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || userID <= 0 {
		b.sendMessage(b.operatorChatID,
			"⚠️ Ошибка! Используйте команду /history [ID пользователя].")
		return
	}
	if b.recorder == nil {
		b.sendMessage(b.operatorChatID, "ℹ️ Журнал переписки не ведется.")
		return
	}

	events, err := b.recorder.Load()
	if err != nil {
		logger.Errorf("failed to load transcript for %d: %v", userID, err)
		b.sendMessage(b.operatorChatID, "⚠️ Не удалось прочитать журнал переписки.")
		return
	}

	var lines []string
	for _, ev := range events {
		if ev.UserID != userID {
			continue
		}
		tag := "👤"
		if ev.Direction == storage.DirOperatorToUser {
			tag = "👨‍💼"
		}
		lines = append(lines, fmt.Sprintf("%s [%s] %s",
			tag, ev.Timestamp.Format("02.01 15:04"), ev.Text))
	}
	if len(lines) == 0 {
		b.sendMessage(b.operatorChatID,
			fmt.Sprintf("ℹ️ Для пользователя %d нет сохраненной переписки.", userID))
		return
	}
	const maxHistory = 10
	if len(lines) > maxHistory {
		lines = lines[len(lines)-maxHistory:]
	}
	b.sendMessage(b.operatorChatID, fmt.Sprintf(
		"📜 Последние сообщения пользователя %d:\n\n%s",
		userID, strings.Join(lines, "\n")))
}

// forceSend opens a session on the operator's behalf and delivers the
// message that was held back.
func (b *Bot) forceSend(cb *tgbotapi.CallbackQuery) {
	idPart := strings.TrimPrefix(cb.Data, "force_send_")
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		logger.Warnf("malformed force-send callback %q", cb.Data)
		return
	}

	b.mu.Lock()
	body, ok := b.pendingForce[userID]
	delete(b.pendingForce, userID)
	b.mu.Unlock()

	if !ok {
		b.sendMessage(b.operatorChatID,
			"⚠️ Сообщение для принудительной отправки не найдено. Отправьте его заново.")
		return
	}

	if !b.sessions.Active(userID) {
		b.sessions.Activate(userID, "")
	}
	b.deliverOperatorReply(userID, body)
}

// cancelSend drops only the targeted pending message; confirmations for
// other users stay queued.
func (b *Bot) cancelSend(cb *tgbotapi.CallbackQuery) {
	idPart := strings.TrimPrefix(cb.Data, "cancel_send_")
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		logger.Warnf("malformed cancel-send callback %q", cb.Data)
		return
	}
	b.mu.Lock()
	delete(b.pendingForce, userID)
	b.mu.Unlock()
	b.sendMessage(b.operatorChatID,
		fmt.Sprintf("✅ Отправка сообщения пользователю %d отменена.", userID))
}

// pinReplyTarget makes the operator's next plain message go to this user.
func (b *Bot) pinReplyTarget(cb *tgbotapi.CallbackQuery) {
	idPart := strings.TrimPrefix(cb.Data, "reply_")
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		logger.Warnf("malformed reply callback %q", cb.Data)
		return
	}
	b.mu.Lock()
	b.replyTarget = userID
	b.mu.Unlock()
	b.sendMessage(b.operatorChatID,
		fmt.Sprintf("✉️ Следующее сообщение будет отправлено пользователю %d.", userID))
}

func (b *Bot) operatorEndChatButton(cb *tgbotapi.CallbackQuery) {
	idPart := strings.TrimPrefix(cb.Data, "op_end_")
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		logger.Warnf("malformed operator end callback %q", cb.Data)
		return
	}
	b.closeChatByOperator(userID)
}

// endChatFromUser handles the user-side "Завершить чат" button.
func (b *Bot) endChatFromUser(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	if !b.sessions.Close(userID) {
		b.sendScreen(cb.Message.Chat.ID,
			"⚠️ Чат уже был завершен.", mainMenuButtonKeyboard())
		return
	}

	b.mu.Lock()
	if b.replyTarget == userID {
		b.replyTarget = 0
	}
	delete(b.pendingForce, userID)
	b.mu.Unlock()

	b.sendScreen(cb.Message.Chat.ID,
		"✅ Чат с оператором завершен.\n\nСпасибо за обращение!", mainMenuButtonKeyboard())
	b.sendMessage(b.operatorChatID,
		fmt.Sprintf("❌ Пользователь %d завершил чат.", userID))
}

// moreQuestions returns the user from the follow-up prompt to the chat.
func (b *Bot) moreQuestions(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	if !b.sessions.Active(userID) {
		b.sendScreen(cb.Message.Chat.ID,
			"⚠️ Чат уже был завершен.", mainMenuButtonKeyboard())
		return
	}
	b.sessions.SetState(userID, session.StateInChat)
	b.sendScreen(cb.Message.Chat.ID,
		"Опишите ваш вопрос одним сообщением.", endChatKeyboard())
}

func (b *Bot) record(userID int64, direction, text string) {
	if b.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Direction: direction,
		Text:      text,
	}
	if err := b.recorder.Append(ev); err != nil {
		logger.Errorf("failed to record transcript event for %d: %v", userID, err)
	}
}

func endChatKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Завершить чат", "end_chat"),
		),
	)
}

func followupKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ У меня ещё вопрос", "more_questions"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Завершить чат", "end_chat"),
		),
	)
}

func operatorReplyKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(userID, 10)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✉️ Ответить", "reply_"+id),
			tgbotapi.NewInlineKeyboardButtonData("📴 Завершить", "op_end_"+id),
		),
	)
}

func mainMenuButtonKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", "back_to_main"),
		),
	)
}
