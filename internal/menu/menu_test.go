package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidOrderNumber(t *testing.T) {
	assert.True(t, ValidOrderNumber("GA-123456"))
	assert.False(t, ValidOrderNumber("ga-123456"))
	assert.False(t, ValidOrderNumber("GA-12345"))
	assert.False(t, ValidOrderNumber("GA-1234567"))
	assert.False(t, ValidOrderNumber(" GA-123456"))
	assert.False(t, ValidOrderNumber("GA123456"))
}

func TestValidCardNumber(t *testing.T) {
	assert.True(t, ValidCardNumber("1234-5678-9012-3456"))
	assert.False(t, ValidCardNumber("1234567890123456"))
	assert.False(t, ValidCardNumber("1234-5678-9012-345"))
	assert.False(t, ValidCardNumber("1234-5678-9012-34567"))
}

func TestEveryScreenButtonResolves(t *testing.T) {
	// Input-state and flow triggers are handled in code, not by screens.
	handledInCode := map[string]bool{
		"back_to_main":            true,
		"support_request":         true,
		"product_recommendations": true,
		"enter_order_number":      true,
		"proceed_with_cancel":     true,
		"gift_check_balance":      true,
	}

	check := func(name string, s Screen) {
		for _, row := range s.Rows {
			for _, b := range row {
				if b.URL != "" || handledInCode[b.Data] {
					continue
				}
				_, ok := Lookup(b.Data)
				assert.True(t, ok, "screen %q links to unregistered %q", name, b.Data)
			}
		}
	}

	check("main", Main)
	for name, s := range screens {
		require.NotEmpty(t, s.Text, "screen %q has no text", name)
		check(name, s)
	}
}

func TestKeyboardRendersURLAndDataButtons(t *testing.T) {
	kb := Main.Keyboard()
	require.NotEmpty(t, kb.InlineKeyboard)

	first := kb.InlineKeyboard[0][0]
	require.NotNil(t, first.URL)
	assert.Equal(t, "https://goldapple.ru/catalog", *first.URL)

	var found bool
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil && *b.CallbackData == "support_request" {
				found = true
			}
		}
	}
	assert.True(t, found, "main menu must expose the support trigger")
}
