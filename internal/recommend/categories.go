package recommend

// Option is one selectable criteria value inside a group.
type Option struct {
	ID    string
	Label string
}

// Group is a named set of criteria values, e.g. type, finish, season.
type Group struct {
	ID      string
	Title   string
	Emoji   string
	Options []Option
}

// Category describes one product category and its criteria tree.
type Category struct {
	ID     string
	Title  string
	Emoji  string
	Groups []Group
}

// Categories is the fixed catalog taxonomy. Order drives keyboard layout.
var Categories = []Category{
	{
		ID: "mascara", Title: "Тушь для ресниц", Emoji: "👁",
		Groups: []Group{
			{ID: "effect", Title: "Эффект", Emoji: "✨", Options: []Option{
				{ID: "volume", Label: "Объем ресниц"},
				{ID: "length", Label: "Удлинение ресниц"},
				{ID: "curl", Label: "Подкручивание ресниц"},
				{ID: "separation", Label: "Разделение ресниц"},
			}},
			{ID: "type", Title: "Тип", Emoji: "🏷", Options: []Option{
				{ID: "waterproof", Label: "Водостойкая"},
				{ID: "regular", Label: "Обычная"},
				{ID: "fibrous", Label: "С фибрами"},
			}},
			{ID: "brush", Title: "Щеточка", Emoji: "🖌", Options: []Option{
				{ID: "silicone", Label: "Силиконовая щеточка"},
				{ID: "curved", Label: "Изогнутая щеточка"},
				{ID: "traditional", Label: "Классическая щеточка"},
			}},
			{ID: "price", Title: "Ценовая категория", Emoji: "💰", Options: []Option{
				{ID: "budget", Label: "Бюджетная (до 1000р)"},
				{ID: "medium", Label: "Средняя (1000-2000р)"},
				{ID: "premium", Label: "Премиум (от 2000р)"},
			}},
		},
	},
	{
		ID: "lipstick", Title: "Помада", Emoji: "💄",
		Groups: []Group{
			{ID: "type", Title: "Тип", Emoji: "🏷", Options: []Option{
				{ID: "matte", Label: "Матовая"},
				{ID: "glossy", Label: "Глянцевая"},
				{ID: "liquid", Label: "Жидкая"},
				{ID: "satin", Label: "Сатиновая"},
			}},
			{ID: "finish", Title: "Финиш", Emoji: "🎨", Options: []Option{
				{ID: "velvet", Label: "Бархатный финиш"},
				{ID: "shimmer", Label: "С шиммером"},
				{ID: "cream", Label: "Кремовый финиш"},
			}},
			{ID: "longevity", Title: "Стойкость", Emoji: "⏱", Options: []Option{
				{ID: "short", Label: "Обычная стойкость"},
				{ID: "medium", Label: "Средняя стойкость"},
				{ID: "long", Label: "Долгая стойкость"},
			}},
			{ID: "color", Title: "Цвет", Emoji: "🌈", Options: []Option{
				{ID: "nude", Label: "Нюдовые оттенки"},
				{ID: "red", Label: "Красные оттенки"},
				{ID: "berry", Label: "Ягодные оттенки"},
				{ID: "pink", Label: "Розовые оттенки"},
			}},
		},
	},
	{
		ID: "perfume", Title: "Парфюм", Emoji: "🧴",
		Groups: []Group{
			{ID: "type", Title: "Тип аромата", Emoji: "🏷", Options: []Option{
				{ID: "floral", Label: "Цветочные"},
				{ID: "citrus", Label: "Цитрусовые"},
				{ID: "woody", Label: "Древесные"},
				{ID: "spicy", Label: "Пряные"},
				{ID: "sweet", Label: "Сладкие"},
				{ID: "fresh", Label: "Свежие"},
			}},
			{ID: "intensity", Title: "Интенсивность", Emoji: "💪", Options: []Option{
				{ID: "light", Label: "Легкая"},
				{ID: "medium", Label: "Средняя"},
				{ID: "strong", Label: "Сильная"},
			}},
			{ID: "longevity", Title: "Стойкость", Emoji: "⏱", Options: []Option{
				{ID: "short", Label: "Обычная стойкость"},
				{ID: "medium", Label: "Средняя стойкость"},
				{ID: "long", Label: "Долгая стойкость"},
			}},
			{ID: "season", Title: "Сезон", Emoji: "🍃", Options: []Option{
				{ID: "spring", Label: "Весенний"},
				{ID: "summer", Label: "Летний"},
				{ID: "autumn", Label: "Осенний"},
				{ID: "winter", Label: "Зимний"},
			}},
			{ID: "price", Title: "Ценовая категория", Emoji: "💰", Options: []Option{
				{ID: "budget", Label: "Бюджетная (до 3000р)"},
				{ID: "medium", Label: "Средняя (3000-5000р)"},
				{ID: "premium", Label: "Премиум (от 5000р)"},
			}},
		},
	},
	{
		ID: "blush", Title: "Румяна", Emoji: "🌸",
		Groups: []Group{
			{ID: "texture", Title: "Текстура", Emoji: "🏷", Options: []Option{
				{ID: "gel", Label: "Гелевые"},
				{ID: "powder", Label: "Пудровые"},
				{ID: "cream", Label: "Кремовые"},
			}},
			{ID: "color", Title: "Цвет", Emoji: "🌈", Options: []Option{
				{ID: "nude", Label: "Нюдовые оттенки"},
				{ID: "bright", Label: "Яркие оттенки"},
			}},
		},
	},
	{
		ID: "highlighter", Title: "Хайлайтер", Emoji: "✨",
		Groups: []Group{
			{ID: "texture", Title: "Текстура", Emoji: "🏷", Options: []Option{
				{ID: "liquid", Label: "Жидкий"},
				{ID: "stick", Label: "Стик"},
				{ID: "powder", Label: "Пудровый"},
			}},
			{ID: "shade", Title: "Оттенки", Emoji: "🌈", Options: []Option{
				{ID: "cool", Label: "Холодные"},
				{ID: "warm", Label: "Теплые"},
			}},
		},
	},
	{
		ID: "powder", Title: "Пудра", Emoji: "🌟",
		Groups: []Group{
			{ID: "texture", Title: "Текстура", Emoji: "🏷", Options: []Option{
				{ID: "loose", Label: "Рассыпчатая"},
				{ID: "pressed", Label: "Прессованная"},
			}},
			{ID: "shade", Title: "Оттенки", Emoji: "🌈", Options: []Option{
				{ID: "transparent", Label: "Прозрачная"},
				{ID: "tinted", Label: "Тонированная"},
			}},
		},
	},
	{
		ID: "eyeshadow", Title: "Тени", Emoji: "👀",
		Groups: []Group{
			{ID: "texture", Title: "Текстура", Emoji: "🏷", Options: []Option{
				{ID: "dry", Label: "Сухие"},
				{ID: "liquid", Label: "Жидкие"},
			}},
			{ID: "shade", Title: "Оттенки", Emoji: "🌈", Options: []Option{
				{ID: "bright", Label: "Яркие"},
				{ID: "nude", Label: "Нюдовые"},
			}},
		},
	},
}

// CategoryByID returns the category description or nil.
func CategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// OptionLabel resolves a group/value pair to its human label, falling back
// to the raw value for attributes outside the taxonomy.
func OptionLabel(categoryID, groupID, value string) string {
	c := CategoryByID(categoryID)
	if c == nil {
		return value
	}
	for _, g := range c.Groups {
		if g.ID != groupID {
			continue
		}
		for _, o := range g.Options {
			if o.ID == value {
				return o.Label
			}
		}
	}
	return value
}

// GroupTitle resolves a group id to its title, falling back to the id.
func GroupTitle(categoryID, groupID string) string {
	c := CategoryByID(categoryID)
	if c == nil {
		return groupID
	}
	for _, g := range c.Groups {
		if g.ID == groupID {
			return g.Title
		}
	}
	return groupID
}
