// Package menu holds the static informational tree as pure data. The bot
// renders screens; it never hardcodes their content.
package menu

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Button is one inline control. Exactly one of Data or URL is set.
type Button struct {
	Label string
	Data  string
	URL   string
}

// Screen is one informational page with its navigation controls.
type Screen struct {
	Text string
	Rows [][]Button
}

// Keyboard renders the screen's buttons.
func (s Screen) Keyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(s.Rows))
	for _, row := range s.Rows {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
			} else {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
			}
		}
		rows = append(rows, btns)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Lookup returns the screen registered for the callback data.
func Lookup(data string) (Screen, bool) {
	s, ok := screens[data]
	return s, ok
}

func backRow() []Button {
	return []Button{{Label: "🔙 Вернуться в меню", Data: "back_to_main"}}
}

func backTo(label, data string) []Button {
	return []Button{{Label: label, Data: data}}
}

// Main is the root menu screen.
var Main = Screen{
	Text: "👋 Добро пожаловать в главное меню!\n\nВыберите нужный раздел:",
	Rows: [][]Button{
		{{Label: "📦 Каталог товаров", URL: "https://goldapple.ru/catalog"}},
		{{Label: "📍 Ближайшие магазины", URL: "https://goldapple.ru/stores"}},
		{{Label: "🔥 Акции", Data: "sales"}},
		{{Label: "📭 Не пришла карта", Data: "missing_card"}},
		{{Label: "📦 Статус заказа", Data: "order_status"}},
		{{Label: "🆘 Техподдержка", Data: "support_request"}},
		{{Label: "🎁 Подарочные карты", Data: "gift_cards"}},
		{{Label: "🛒 Как оформить заказ", Data: "how_to_order"}},
		{{Label: "❌ Отменить заказ", Data: "order_cancellation"}},
		{{Label: "🛍 Консультация по товару", Data: "product_recommendations"}},
	},
}

var screens = map[string]Screen{
	"sales": {
		Text: "🔥 Текущие акции:\n\n" +
			"1. Скидка 20% на первый заказ\n" +
			"2. Скидка 5% при оплате картой Gold\n" +
			"3. Бесплатная доставка при заказе от 5000₽\n\n" +
			"Подробности на сайте: https://goldapple.ru/sales",
		Rows: [][]Button{
			{{Label: "Скидка на первый заказ", Data: "first_order_discount"}},
			{{Label: "Скидка при оплате картой", Data: "card_discount"}},
			backRow(),
		},
	},
	"first_order_discount": {
		Text: "🎁 Скидка 20% на первый заказ\n\n" +
			"Как получить:\n" +
			"• Зарегистрируйтесь на сайте goldapple.ru\n" +
			"• Добавьте товары в корзину\n" +
			"• Введите промокод FIRST20 при оформлении\n\n" +
			"Условия:\n" +
			"• Действует только для новых клиентов\n" +
			"• Не суммируется с другими акциями",
		Rows: [][]Button{backTo("🔙 Назад к акциям", "sales"), backRow()},
	},
	"card_discount": {
		Text: "💳 Скидка 5% при оплате картой Gold\n\n" +
			"Как получить:\n" +
			"• Оформите заказ на сайте goldapple.ru\n" +
			"• Выберите способ оплаты «Картой Gold»\n\n" +
			"Скидка применяется автоматически и суммируется с бонусными баллами.",
		Rows: [][]Button{backTo("🔙 Назад к акциям", "sales"), backRow()},
	},

	"missing_card": {
		Text: "📭 Проблемы с доставкой карты\n\nВыберите интересующий вас раздел:",
		Rows: [][]Button{
			{{Label: "📭 Карта не пришла", Data: "card_not_arrived"}},
			{{Label: "📱 Повторно отправить SMS", Data: "resend_sms"}},
			{{Label: "⏱ Сроки доставки", Data: "shipping_time"}},
			backRow(),
		},
	},
	"card_not_arrived": {
		Text: "📭 Карта не пришла\n\n" +
			"Возможные причины:\n" +
			"1. Срок доставки еще не истек (стандартный срок — до 14 рабочих дней)\n" +
			"2. Указан неверный адрес доставки\n" +
			"3. Проблемы с почтовым отправлением\n\n" +
			"Проверьте статус отправления в личном кабинете. Если карта не доставлена " +
			"более 14 рабочих дней, обратитесь в службу поддержки.",
		Rows: [][]Button{backTo("🔙 Назад", "missing_card"), backRow()},
	},
	"resend_sms": {
		Text: "📱 Повторная отправка SMS\n\n" +
			"1. Войдите в личный кабинет на сайте goldapple.ru\n" +
			"2. Перейдите в раздел «Мои карты»\n" +
			"3. Нажмите «Отправить SMS повторно»\n\n" +
			"Или обратитесь в поддержку по телефону 8-800-555-33-22.",
		Rows: [][]Button{backTo("🔙 Назад", "missing_card"), backRow()},
	},
	"shipping_time": {
		Text: "⏱ Сроки доставки карт\n\n" +
			"🏙 Москва и Санкт-Петербург: 2-5 рабочих дней\n" +
			"🏙 Другие крупные города: 5-7 рабочих дней\n" +
			"🏙 Остальные регионы: 7-14 рабочих дней\n\n" +
			"Электронные подарочные карты отправляются на email моментально после оплаты.",
		Rows: [][]Button{backTo("🔙 Назад", "missing_card"), backRow()},
	},

	"order_status": {
		Text: "📦 Проверка статуса заказа\n\nВыберите действие:",
		Rows: [][]Button{
			{{Label: "📝 Ввести номер заказа", Data: "enter_order_number"}},
			backRow(),
		},
	},

	"gift_cards": {
		Text: "🎁 Подарочные карты Gold Apple\n\nВыберите интересующий вас раздел:",
		Rows: [][]Button{
			{{Label: "🛒 Как купить?", Data: "gift_how_to_buy"}},
			{{Label: "📖 Как использовать?", Data: "gift_how_to_use"}},
			{{Label: "💳 Узнать баланс карты", Data: "gift_check_balance"}},
			backRow(),
		},
	},
	"gift_how_to_buy": {
		Text: "🛒 Как купить подарочную карту Gold Apple:\n\n" +
			"1. Посетите любой магазин Gold Apple\n" +
			"2. Выберите подарочную карту на нужную сумму\n" +
			"3. Оплатите карту на кассе\n\n" +
			"Или купите электронную карту на goldapple.ru/giftcard.\n" +
			"Доступны номиналы: 1000₽, 3000₽, 5000₽, 10000₽.",
		Rows: [][]Button{backTo("🔙 Назад к подарочным картам", "gift_cards"), backRow()},
	},
	"gift_how_to_use": {
		Text: "📖 Как использовать подарочную карту Gold Apple:\n\n" +
			"В магазине: предъявите карту на кассе при оплате.\n\n" +
			"На сайте: при оформлении заказа выберите способ оплаты " +
			"«Подарочной картой» и введите номер карты и PIN-код.\n\n" +
			"Срок действия карты: 1 год с момента активации.",
		Rows: [][]Button{backTo("🔙 Назад к подарочным картам", "gift_cards"), backRow()},
	},

	"how_to_order": {
		Text: "🛒 Как оформить заказ:\n\n" +
			"1. Зайдите на сайт goldapple.ru\n" +
			"2. Добавьте нужные товары в корзину\n" +
			"3. Нажмите «Оформить заказ»\n" +
			"4. Заполните данные для доставки\n" +
			"5. Выберите способ оплаты и подтвердите заказ\n\n" +
			"Если у вас возникли проблемы, выберите тип проблемы ниже:",
		Rows: [][]Button{
			{{Label: "❓ Проблемы с оплатой", Data: "payment_issue"}},
			{{Label: "❓ Проблемы с адресом доставки", Data: "address_issue"}},
			{{Label: "❓ Проблемы с корзиной", Data: "cart_issue"}},
			backRow(),
		},
	},
	"payment_issue": {
		Text: "💳 Проблемы с оплатой:\n\n" +
			"Возможные причины: недостаточно средств, банк заблокировал " +
			"транзакцию, превышен лимит по карте.\n\n" +
			"Проверьте баланс, свяжитесь с банком или попробуйте другой " +
			"способ оплаты. Если проблема остается, обратитесь в поддержку.",
		Rows: [][]Button{backTo("🔙 Назад", "how_to_order"), backRow()},
	},
	"address_issue": {
		Text: "📍 Проблемы с адресом доставки:\n\n" +
			"Проверьте правильность адреса, убедитесь, что ваш регион входит " +
			"в зону доставки, и заполните все обязательные поля.",
		Rows: [][]Button{backTo("🔙 Назад", "how_to_order"), backRow()},
	},
	"cart_issue": {
		Text: "🛒 Проблемы с корзиной:\n\n" +
			"Товар мог закончиться на складе или быть недоступен в вашем " +
			"регионе. Обновите страницу и попробуйте снова.",
		Rows: [][]Button{backTo("🔙 Назад", "how_to_order"), backRow()},
	},

	"order_cancellation": {
		Text: "❌ Отмена заказа\n\nВы действительно хотите отменить заказ?",
		Rows: [][]Button{
			{{Label: "❌ Всё-таки отменить", Data: "proceed_with_cancel"}},
			{{Label: "❤️ Я передумал(а)", Data: "changed_mind_cancel"}},
			backRow(),
		},
	},
	"changed_mind_cancel": {
		Text: "❤️ Отлично! Ваш заказ остается в силе.\n\nСпасибо, что остаетесь с нами!",
		Rows: [][]Button{backRow()},
	},
}
