package persona

// DefaultID names the persona the relay speaks as.
const DefaultID = "psychologist"

// Topic is a quick-start prompt offered on the welcome screen.
type Topic struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Persona is the fixed framing put in front of every user message.
// SystemPrompt never leaves the server.
type Persona struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	OpeningLine  string  `json:"openingLine"`
	Topics       []Topic `json:"topics,omitempty"`
	SystemPrompt string  `json:"-"`
}

// Seed returns the built-in personas.
func Seed() []Persona {
	return []Persona{
		{
			ID:          DefaultID,
			Name:        "Психолог",
			Title:       "Эмпатичный собеседник",
			OpeningLine: "Привет! Я здесь, чтобы выслушать. Расскажи, что тебя беспокоит.",
			Topics: []Topic{
				{Label: "😟 Тревога", Message: "Меня постоянно что-то тревожит, и я не могу расслабиться."},
				{Label: "💼 Стресс на работе", Message: "Я очень устаю на работе и чувствую, что выгораю."},
				{Label: "💔 Отношения", Message: "У меня сложности в отношениях, хочу об этом поговорить."},
				{Label: "🌧 Одиночество", Message: "Мне одиноко, даже когда вокруг есть люди."},
			},
			SystemPrompt: "Ты – опытный психолог, умеющий вести эмпатичный диалог, задавать открытые вопросы " +
				"и поддерживать человека в сложных эмоциональных состояниях. Не давай советов, если не уверен, " +
				"а лучше уточняй и помогай человеку осознать свои чувства.",
		},
	}
}
