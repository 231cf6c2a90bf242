package recommend

import (
	"fmt"
	"sort"
	"strings"

	"goldapple-bot/internal/catalog"
)

// FormatProduct renders one product card in HTML.
func FormatProduct(p catalog.Product) string {
	emoji := "🎀"
	if c := CategoryByID(p.Category); c != nil {
		emoji = c.Emoji
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b>\n", emoji, p.Name)
	fmt.Fprintf(&b, "💰 Цена: %.0f ₽\n", p.Price)
	fmt.Fprintf(&b, "⭐ Рейтинг: %.1f / 5.0\n", p.Rating)

	attrs := p.Attrs()
	if len(attrs) == 0 {
		return b.String()
	}
	b.WriteString("\n<b>Характеристики:</b>\n")
	for _, groupID := range attrGroupOrder(p.Category, attrs) {
		fmt.Fprintf(&b, "• %s: %s\n", GroupTitle(p.Category, groupID), attrValueLabels(p.Category, groupID, attrs[groupID]))
	}
	return b.String()
}

// FormatList renders a numbered recommendation list.
func FormatList(products []catalog.Product) string {
	var b strings.Builder
	b.WriteString("✨ <b>Рекомендации для вас:</b>\n\n")
	for i, p := range products {
		fmt.Fprintf(&b, "<b>%d.</b> %s\n", i+1, FormatProduct(p))
	}
	return b.String()
}

// attrGroupOrder lists present attribute groups in taxonomy order, with any
// groups outside the taxonomy appended alphabetically.
func attrGroupOrder(categoryID string, attrs map[string]interface{}) []string {
	var out []string
	seen := map[string]bool{}
	if c := CategoryByID(categoryID); c != nil {
		for _, g := range c.Groups {
			if _, ok := attrs[g.ID]; ok {
				out = append(out, g.ID)
				seen[g.ID] = true
			}
		}
	}
	var rest []string
	for id := range attrs {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func attrValueLabels(categoryID, groupID string, v interface{}) string {
	switch val := v.(type) {
	case string:
		return OptionLabel(categoryID, groupID, val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				parts = append(parts, OptionLabel(categoryID, groupID, s))
			}
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
