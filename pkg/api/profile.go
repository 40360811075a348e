package api

// Profile представляет профиль пользователя в запросах и ответах
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image"` // аватар в виде data URI
}

// ChatRequest представляет сообщение пользователя помощнику
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse представляет ответ помощника
type ChatResponse struct {
	Reply string `json:"reply"`
}
