package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"goldapple-bot/internal/logger"
	"goldapple-bot/internal/recommend"
)

// startRecommendations shows the category picker.
func (b *Bot) startRecommendations(chatID int64) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(recommend.Categories)+1)
	for _, c := range recommend.Categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Emoji+" "+c.Title, "category_"+c.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", "back_to_main"),
	))

	b.sendScreen(chatID,
		"💄 <b>Подбор товаров</b>\n\nВыберите категорию:",
		tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// selectCategory resets the user's selection and shows the criteria tree.
func (b *Bot) selectCategory(cb *tgbotapi.CallbackQuery) {
	categoryID := strings.TrimPrefix(cb.Data, "category_")
	cat := recommend.CategoryByID(categoryID)
	if cat == nil {
		logger.Warnf("unknown category %q in callback", categoryID)
		b.startRecommendations(cb.Message.Chat.ID)
		return
	}

	b.criteria.Reset(cb.From.ID)
	b.sendCriteriaScreen(cb.Message.Chat.ID, cat, nil)
}

// toggleCriteria flips one criteria option and re-renders the tree with
// the checkmarks updated.
func (b *Bot) toggleCriteria(cb *tgbotapi.CallbackQuery) {
	// criteria_<category>_<group>_<value>
	parts := strings.SplitN(cb.Data, "_", 4)
	if len(parts) != 4 {
		logger.Warnf("malformed criteria callback %q", cb.Data)
		return
	}
	categoryID, groupID, value := parts[1], parts[2], parts[3]
	cat := recommend.CategoryByID(categoryID)
	if cat == nil {
		logger.Warnf("unknown category %q in criteria callback", categoryID)
		return
	}

	selected := b.criteria.Toggle(cb.From.ID, groupID+"_"+value)
	b.sendCriteriaScreen(cb.Message.Chat.ID, cat, selected)
}

func (b *Bot) resetCriteria(cb *tgbotapi.CallbackQuery) {
	categoryID := strings.TrimPrefix(cb.Data, "reset_criteria_")
	cat := recommend.CategoryByID(categoryID)
	if cat == nil {
		logger.Warnf("unknown category %q in reset callback", categoryID)
		return
	}
	b.criteria.Reset(cb.From.ID)
	b.sendCriteriaScreen(cb.Message.Chat.ID, cat, nil)
}

// showRecommendations runs the lookup over the selected criteria.
func (b *Bot) showRecommendations(cb *tgbotapi.CallbackQuery) {
	categoryID := strings.TrimPrefix(cb.Data, "show_recommendations_")
	cat := recommend.CategoryByID(categoryID)
	if cat == nil {
		logger.Warnf("unknown category %q in show callback", categoryID)
		return
	}

	selected := b.criteria.Selected(cb.From.ID)
	products := b.recommender.ByCriteria(categoryID, selected)
	if len(products) == 0 {
		b.sendScreen(cb.Message.Chat.ID,
			"😔 По выбранным критериям ничего не нашлось.\n\nПопробуйте изменить критерии или посмотреть всю категорию.",
			resultKeyboard(categoryID))
		return
	}

	b.sendScreen(cb.Message.Chat.ID, recommend.FormatList(products), resultKeyboard(categoryID))
}

// refreshRecommendations replaces the list with a random sample.
func (b *Bot) refreshRecommendations(cb *tgbotapi.CallbackQuery) {
	categoryID := strings.TrimPrefix(cb.Data, "refresh_recommendations_")
	cat := recommend.CategoryByID(categoryID)
	if cat == nil {
		logger.Warnf("unknown category %q in refresh callback", categoryID)
		return
	}

	products := b.recommender.RandomSample(categoryID, 3)
	if len(products) == 0 {
		b.sendScreen(cb.Message.Chat.ID,
			"😔 В этой категории пока нет товаров.", resultKeyboard(categoryID))
		return
	}

	b.sendScreen(cb.Message.Chat.ID, recommend.FormatList(products), resultKeyboard(categoryID))
}

func (b *Bot) sendCriteriaScreen(chatID int64, cat *recommend.Category, selected []string) {
	chosen := make(map[string]bool, len(selected))
	for _, k := range selected {
		chosen[k] = true
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range cat.Groups {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s %s %s", g.Emoji, g.Title, g.Emoji),
				"noop"),
		))
		for _, o := range g.Options {
			label := o.Label
			if chosen[g.ID+"_"+o.ID] {
				label = "✅ " + label
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label,
					fmt.Sprintf("criteria_%s_%s_%s", cat.ID, g.ID, o.ID)),
			))
		}
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Показать рекомендации", "show_recommendations_"+cat.ID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Сбросить критерии", "reset_criteria_"+cat.ID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 К категориям", "back_to_categories"),
		),
	)

	text := fmt.Sprintf("%s <b>%s</b>\n\nВыберите критерии подбора (можно несколько):", cat.Emoji, cat.Title)
	if len(selected) > 0 {
		labels := make([]string, 0, len(selected))
		for _, k := range selected {
			groupID, value, _ := strings.Cut(k, "_")
			labels = append(labels, recommend.OptionLabel(cat.ID, groupID, value))
		}
		text += "\n\nВыбрано: " + strings.Join(labels, ", ")
	}

	b.sendScreen(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func resultKeyboard(categoryID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Показать другие", "refresh_recommendations_"+categoryID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Изменить критерии", "category_"+categoryID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 К категориям", "back_to_categories"),
		),
	)
}
