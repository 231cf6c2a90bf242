package catalog

// seedProducts is the demo catalog loaded into an empty store.
func seedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Тушь для ресниц Volume", Category: "mascara", Price: 1500, Rating: 4.8, Attributes: mustJSON(map[string]interface{}{
			"effect": []string{"volume", "length"}, "type": "waterproof", "brush": "silicone", "price": "medium",
		})},
		{ID: 2, Name: "Помада матовая Ruby", Category: "lipstick", Price: 2300, Rating: 4.5, Attributes: mustJSON(map[string]interface{}{
			"type": "matte", "finish": "velvet", "longevity": "long", "color": "red", "price": "premium",
		})},
		{ID: 3, Name: "Парфюм Rose Garden", Category: "perfume", Price: 4500, Rating: 4.9, Attributes: mustJSON(map[string]interface{}{
			"type": []string{"floral", "sweet"}, "intensity": "medium", "longevity": "long", "season": []string{"spring", "summer"}, "price": "medium",
		})},
		{ID: 4, Name: "Помада глянцевая Pearl", Category: "lipstick", Price: 1800, Rating: 4.7, Attributes: mustJSON(map[string]interface{}{
			"type": "glossy", "finish": "shimmer", "longevity": "medium", "color": "nude", "price": "medium",
		})},
		{ID: 5, Name: "Тушь для ресниц Dramatic", Category: "mascara", Price: 2500, Rating: 4.6, Attributes: mustJSON(map[string]interface{}{
			"effect": []string{"volume", "curl"}, "type": "waterproof", "brush": "curved", "price": "premium",
		})},
		{ID: 6, Name: "Тушь для ресниц Natural Look", Category: "mascara", Price: 900, Rating: 4.3, Attributes: mustJSON(map[string]interface{}{
			"effect": []string{"separation", "definition"}, "type": "regular", "brush": "traditional", "price": "budget",
		})},
		{ID: 7, Name: "Помада жидкая Velvet", Category: "lipstick", Price: 1700, Rating: 4.8, Attributes: mustJSON(map[string]interface{}{
			"type": "liquid", "finish": "velvet", "longevity": "long", "color": "berry", "price": "medium",
		})},
		{ID: 8, Name: "Парфюм Citrus Fresh", Category: "perfume", Price: 3500, Rating: 4.3, Attributes: mustJSON(map[string]interface{}{
			"type": []string{"citrus", "fresh"}, "intensity": "light", "longevity": "medium", "season": []string{"summer"}, "price": "medium",
		})},
		{ID: 9, Name: "Тушь для ресниц Natural", Category: "mascara", Price: 900, Rating: 4.2, Attributes: mustJSON(map[string]interface{}{
			"effect": []string{"length", "separation"}, "type": "regular", "brush": "natural", "price": "budget",
		})},
		{ID: 10, Name: "Парфюм Tropical Night", Category: "perfume", Price: 5500, Rating: 4.7, Attributes: mustJSON(map[string]interface{}{
			"type": []string{"tropical", "spicy"}, "intensity": "strong", "longevity": "long", "season": []string{"summer", "autumn"}, "price": "premium",
		})},
		{ID: 11, Name: "Румяна гелевые Rose Glow", Category: "blush", Price: 2500, Rating: 4.6, Attributes: mustJSON(map[string]interface{}{
			"texture": "gel", "color": "nude", "price": "medium",
		})},
		{ID: 12, Name: "Румяна пудровые Bright Berry", Category: "blush", Price: 3200, Rating: 4.4, Attributes: mustJSON(map[string]interface{}{
			"texture": "powder", "color": "bright", "price": "medium",
		})},
		{ID: 13, Name: "Румяна кремовые Peachy", Category: "blush", Price: 2800, Rating: 4.7, Attributes: mustJSON(map[string]interface{}{
			"texture": "cream", "color": "nude", "price": "medium",
		})},
		{ID: 14, Name: "Хайлайтер жидкий Golden Glow", Category: "highlighter", Price: 3500, Rating: 4.8, Attributes: mustJSON(map[string]interface{}{
			"texture": "liquid", "shade": "warm", "price": "medium",
		})},
		{ID: 15, Name: "Хайлайтер стик Silver Light", Category: "highlighter", Price: 2900, Rating: 4.5, Attributes: mustJSON(map[string]interface{}{
			"texture": "stick", "shade": "cool", "price": "medium",
		})},
		{ID: 16, Name: "Хайлайтер пудровый Pearl Shine", Category: "highlighter", Price: 3800, Rating: 4.9, Attributes: mustJSON(map[string]interface{}{
			"texture": "powder", "shade": "warm", "price": "medium",
		})},
		{ID: 17, Name: "Пудра рассыпчатая Transparent", Category: "powder", Price: 2200, Rating: 4.3, Attributes: mustJSON(map[string]interface{}{
			"texture": "loose", "shade": "transparent", "price": "medium",
		})},
		{ID: 18, Name: "Пудра прессованная Beige", Category: "powder", Price: 2700, Rating: 4.6, Attributes: mustJSON(map[string]interface{}{
			"texture": "pressed", "shade": "tinted", "price": "medium",
		})},
		{ID: 19, Name: "Тени сухие Nude Palette", Category: "eyeshadow", Price: 2400, Rating: 4.5, Attributes: mustJSON(map[string]interface{}{
			"texture": "dry", "shade": "nude", "price": "medium",
		})},
		{ID: 20, Name: "Тени жидкие Bright Color", Category: "eyeshadow", Price: 3100, Rating: 4.7, Attributes: mustJSON(map[string]interface{}{
			"texture": "liquid", "shade": "bright", "price": "medium",
		})},
		{ID: 21, Name: "Тени сухие Smoky Eyes", Category: "eyeshadow", Price: 2800, Rating: 4.8, Attributes: mustJSON(map[string]interface{}{
			"texture": "dry", "shade": "bright", "price": "medium",
		})},
	}
}
