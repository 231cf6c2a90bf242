package telegram

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldapple-bot/internal/contact"
	"goldapple-bot/internal/session"
	"goldapple-bot/internal/storage"
)

type sentMessage struct {
	chatID int64
	text   string
	markup *tgbotapi.InlineKeyboardMarkup
}

type fakeSender struct {
	sent []sentMessage
	fail bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.fail {
		return tgbotapi.Message{}, assert.AnError
	}
	if mc, ok := c.(tgbotapi.MessageConfig); ok {
		sm := sentMessage{chatID: mc.ChatID, text: mc.Text}
		if kb, ok := mc.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
			sm.markup = &kb
		}
		f.sent = append(f.sent, sm)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) lastTo(chatID int64) string {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].chatID == chatID {
			return f.sent[i].text
		}
	}
	return ""
}

func (f *fakeSender) lastMarkupTo(chatID int64) *tgbotapi.InlineKeyboardMarkup {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].chatID == chatID {
			return f.sent[i].markup
		}
	}
	return nil
}

type memRecorder struct{ events []storage.Event }

func (r *memRecorder) Append(e storage.Event) error { r.events = append(r.events, e); return nil }
func (r *memRecorder) Load() ([]storage.Event, error) {
	return append([]storage.Event(nil), r.events...), nil
}

const operatorChat int64 = 999

func newTestBot() (*Bot, *fakeSender, *memRecorder) {
	fs := &fakeSender{}
	rec := &memRecorder{}
	b := &Bot{
		s:              fs,
		operatorChatID: operatorChat,
		sessions:       session.NewManager(0),
		contacts:       contact.NewRegistry(nil),
		recorder:       rec,
		parseMode:      "HTML",
		pendingForce:   make(map[int64]string),
		pendingCancel:  make(map[int64]string),
	}
	return b, fs, rec
}

func userMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, FirstName: "Аня", UserName: "anya"},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}
}

func operatorMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: 1},
		Chat: &tgbotapi.Chat{ID: operatorChat},
		Text: text,
	}
}

func userCallback(userID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: userID, FirstName: "Аня"},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}
}

func operatorCallback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: 1},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: operatorChat}},
		Data:    data,
	}
}

func TestSupportRoundTrip(t *testing.T) {
	b, fs, rec := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	assert.Contains(t, fs.lastTo(42), "как к вам обращаться")
	assert.Equal(t, session.StateAwaitingName, b.sessions.State(42))

	b.handleIncomingMessage(userMessage(42, "Аня"))
	assert.Contains(t, fs.lastTo(42), "подключены к чату с оператором")
	assert.Contains(t, fs.lastTo(operatorChat), "Новый запрос в техподдержку")
	assert.Contains(t, fs.lastTo(operatorChat), "42")

	b.handleIncomingMessage(userMessage(42, "Где мой заказ GA-123456?"))
	assert.Contains(t, fs.lastTo(operatorChat), "Где мой заказ GA-123456?")
	assert.Contains(t, fs.lastTo(42), "отправлено оператору")

	b.handleIncomingMessage(operatorMessage("42 Заказ уже в пути"))
	assert.Contains(t, fs.lastTo(42), "Заказ уже в пути")
	assert.Contains(t, fs.lastTo(operatorChat), "успешно отправлено пользователю 42")
	assert.Equal(t, session.StateWaitingFollowup, b.sessions.State(42))

	require.Len(t, rec.events, 2)
	assert.Equal(t, storage.DirUserToOperator, rec.events[0].Direction)
	assert.Equal(t, storage.DirOperatorToUser, rec.events[1].Direction)
}

func TestDoubleSupportRequestKeepsOneSession(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	b.handleCallback(userCallback(42, "support_request"))
	assert.Contains(t, fs.lastTo(42), "уже подключены")
	assert.Equal(t, 1, b.sessions.Len())
}

func TestOperatorReplyAcceptsNewlineSeparator(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	// id typed on its own line, message below it
	b.handleIncomingMessage(operatorMessage("42\nЗаказ уже в пути"))
	assert.Contains(t, fs.lastTo(42), "Заказ уже в пути")
	assert.Contains(t, fs.lastTo(operatorChat), "успешно отправлено пользователю 42")
}

func TestOperatorHistoryCommand(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))
	b.handleIncomingMessage(userMessage(42, "Где заказ?"))
	b.handleIncomingMessage(operatorMessage("42 Уже в пути"))

	b.handleIncomingMessage(operatorMessage("/history 42"))
	last := fs.lastTo(operatorChat)
	assert.Contains(t, last, "Последние сообщения пользователя 42")
	assert.Contains(t, last, "Где заказ?")
	assert.Contains(t, last, "Уже в пути")

	b.handleIncomingMessage(operatorMessage("/history 77"))
	assert.Contains(t, fs.lastTo(operatorChat), "нет сохраненной переписки")

	b.handleIncomingMessage(operatorMessage("/history"))
	assert.Contains(t, fs.lastTo(operatorChat), "/history [ID пользователя]")
}

func TestOperatorReplyBadFormat(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleIncomingMessage(operatorMessage("привет"))
	assert.Contains(t, fs.lastTo(operatorChat), "Неверный формат")
}

func TestOperatorMessageToInactiveUserOffersForceSend(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleIncomingMessage(operatorMessage("42 Добро пожаловать"))

	assert.Contains(t, fs.lastTo(operatorChat), "не активен в чате поддержки")
	kb := fs.lastMarkupTo(operatorChat)
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, "force_send_42", *kb.InlineKeyboard[0][0].CallbackData)

	// nothing reached the user yet
	assert.Empty(t, fs.lastTo(42))

	b.handleCallback(operatorCallback("force_send_42"))
	assert.Contains(t, fs.lastTo(42), "Добро пожаловать")
	assert.True(t, b.sessions.Active(42))
	assert.Contains(t, fs.lastTo(operatorChat), "успешно отправлено пользователю 42")
}

func TestCancelSendDropsPendingMessage(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleIncomingMessage(operatorMessage("42 Добро пожаловать"))
	b.handleCallback(operatorCallback("cancel_send_42"))
	assert.Contains(t, fs.lastTo(operatorChat), "отменена")

	b.handleCallback(operatorCallback("force_send_42"))
	assert.Contains(t, fs.lastTo(operatorChat), "не найдено")
	assert.False(t, b.sessions.Active(42))
}

func TestCancelSendKeepsOtherPendingMessages(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleIncomingMessage(operatorMessage("42 Сообщение первому"))
	b.handleIncomingMessage(operatorMessage("43 Сообщение второму"))

	// cancelling the first confirmation must not touch the second
	b.handleCallback(operatorCallback("cancel_send_42"))

	b.handleCallback(operatorCallback("force_send_43"))
	assert.Contains(t, fs.lastTo(43), "Сообщение второму")
	assert.True(t, b.sessions.Active(43))
	assert.False(t, b.sessions.Active(42))
}

func TestPinnedReplyTarget(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	b.handleCallback(operatorCallback("reply_42"))
	assert.Contains(t, fs.lastTo(operatorChat), "пользователю 42")

	// a plain message without the id prefix goes to the pinned user
	b.handleIncomingMessage(operatorMessage("Здравствуйте, чем могу помочь?"))
	assert.Contains(t, fs.lastTo(42), "Здравствуйте, чем могу помочь?")

	// the pin is one-shot
	b.handleIncomingMessage(operatorMessage("Ещё раз"))
	assert.Contains(t, fs.lastTo(operatorChat), "Неверный формат")
}

func TestEndChatIsIdempotent(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	b.handleCallback(userCallback(42, "end_chat"))
	assert.Contains(t, fs.lastTo(42), "Чат с оператором завершен")
	assert.Contains(t, fs.lastTo(operatorChat), "завершил чат")

	before := len(fs.sent)
	b.handleCallback(userCallback(42, "end_chat"))
	assert.Contains(t, fs.lastTo(42), "уже был завершен")
	// the second close does not notify the operator again
	assert.Equal(t, before+1, len(fs.sent))
}

func TestOperatorEndCommand(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	b.handleIncomingMessage(operatorMessage("/end"))
	assert.Contains(t, fs.lastTo(operatorChat), "/end [ID пользователя]")

	b.handleIncomingMessage(operatorMessage("/end 42"))
	assert.Contains(t, fs.lastTo(42), "Чат с оператором завершен")
	assert.False(t, b.sessions.Active(42))

	b.handleIncomingMessage(operatorMessage("/end 42"))
	assert.Contains(t, fs.lastTo(operatorChat), "не активен")
}

func TestFollowupFlow(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))
	b.handleIncomingMessage(operatorMessage("42 Готово"))
	require.Equal(t, session.StateWaitingFollowup, b.sessions.State(42))

	b.handleCallback(userCallback(42, "more_questions"))
	assert.Equal(t, session.StateInChat, b.sessions.State(42))
	assert.Contains(t, fs.lastTo(42), "Опишите ваш вопрос")

	// a follow-up message still relays without re-asking the name
	b.handleIncomingMessage(userMessage(42, "А когда доставка?"))
	assert.Contains(t, fs.lastTo(operatorChat), "А когда доставка?")
}

func TestInChatMessageShortCircuitsMenu(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	// even a /start goes to the operator while the chat is live
	b.handleIncomingMessage(userMessage(42, "/start"))
	assert.Contains(t, fs.lastTo(operatorChat), "/start")
}

func TestBackToMainCancelsNameStep(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	require.Equal(t, session.StateAwaitingName, b.sessions.State(42))

	b.handleCallback(userCallback(42, "back_to_main"))
	assert.Equal(t, session.StateNone, b.sessions.State(42))
	assert.Contains(t, fs.lastTo(42), "Выберите нужный раздел")
}

func TestOrderNumberValidation(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "enter_order_number"))
	assert.Contains(t, fs.lastTo(42), "GA-XXXXXX")
	require.Equal(t, session.InputOrderNumber, b.sessions.Input(42))

	b.handleIncomingMessage(userMessage(42, "12345"))
	assert.Contains(t, fs.lastTo(42), "Неверный формат")
	assert.Equal(t, session.InputOrderNumber, b.sessions.Input(42))

	b.handleIncomingMessage(userMessage(42, "GA-123456"))
	assert.Contains(t, fs.lastTo(42), "GA-123456")
	assert.Contains(t, fs.lastTo(42), "Статус")
	assert.Equal(t, session.InputNone, b.sessions.Input(42))
}

func TestCancelOrderFlow(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "proceed_with_cancel"))
	b.handleIncomingMessage(userMessage(42, "GA-654321"))
	assert.Contains(t, fs.lastTo(42), "отменить заказ")

	b.handleCallback(userCallback(42, "confirm_cancel"))
	assert.Contains(t, fs.lastTo(42), "GA-654321")
	assert.Contains(t, fs.lastTo(42), "принята")

	// confirming again has nothing to act on
	b.handleCallback(userCallback(42, "confirm_cancel"))
	assert.Contains(t, fs.lastTo(42), "Нет заказа")
}

func TestGiftCardBalance(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "gift_check_balance"))
	require.Equal(t, session.InputCardNumber, b.sessions.Input(42))

	b.handleIncomingMessage(userMessage(42, "1234-5678"))
	assert.Contains(t, fs.lastTo(42), "Неверный формат")

	b.handleIncomingMessage(userMessage(42, "1234-5678-9012-3456"))
	assert.Contains(t, fs.lastTo(42), "Баланс")
}

func TestContactStoredOnce(t *testing.T) {
	b, fs, _ := newTestBot()

	msg := userMessage(42, "")
	msg.Contact = &tgbotapi.Contact{PhoneNumber: "+79990001122"}
	b.handleIncomingMessage(msg)
	assert.Contains(t, fs.lastTo(42), "сохранен")

	msg2 := userMessage(42, "")
	msg2.Contact = &tgbotapi.Contact{PhoneNumber: "+70000000000"}
	b.handleIncomingMessage(msg2)
	assert.Contains(t, fs.lastTo(42), "уже сохранен")
	assert.Equal(t, "+79990001122", b.contacts.Get(42))
}

func TestContactShownInOperatorCard(t *testing.T) {
	b, fs, _ := newTestBot()

	msg := userMessage(42, "")
	msg.Contact = &tgbotapi.Contact{PhoneNumber: "+79990001122"}
	b.handleIncomingMessage(msg)

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))
	assert.Contains(t, fs.lastTo(operatorChat), "+79990001122")
}

func TestRelayFailureReportedToUser(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "support_request"))
	b.handleIncomingMessage(userMessage(42, "Аня"))

	fs.fail = true
	b.handleIncomingMessage(userMessage(42, "вопрос"))
	fs.fail = false

	b.handleIncomingMessage(userMessage(42, "вопрос"))
	assert.Contains(t, fs.lastTo(operatorChat), "вопрос")
}

func TestMenuScreenCallback(t *testing.T) {
	b, fs, _ := newTestBot()

	b.handleCallback(userCallback(42, "sales"))
	assert.NotEmpty(t, fs.lastTo(42))
	assert.NotNil(t, fs.lastMarkupTo(42))
}

func TestParseOperatorReply(t *testing.T) {
	id, body, err := parseOperatorReply("42 Добро пожаловать")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Добро пожаловать", body)

	// the id and the body may be separated by any whitespace run
	id, body, err = parseOperatorReply("42\nДобро пожаловать")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Добро пожаловать", body)

	id, body, err = parseOperatorReply("42\tтекст")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "текст", body)

	_, _, err = parseOperatorReply("привет всем")
	assert.ErrorIs(t, err, errBadReplyFormat)

	_, _, err = parseOperatorReply("42")
	assert.ErrorIs(t, err, errBadReplyFormat)

	_, _, err = parseOperatorReply("-5 текст")
	assert.ErrorIs(t, err, errBadReplyFormat)
}

func TestGreetingUsesFirstName(t *testing.T) {
	assert.True(t, strings.Contains(greeting("Аня"), "Аня"))
	assert.True(t, strings.Contains(greeting(""), "Привет"))
}
