package models

// Profile представляет профиль пользователя.
// Хранится отдельно от записей и не участвует в жизненном цикле корзины.
type Profile struct {
	Name  string `json:"name"`  // Name имя
	Email string `json:"email"` // Email адрес почты
	Phone string `json:"phone"` // Phone телефон
	Image string `json:"image"` // Image аватар в виде data URI
}

// IsEmpty сообщает, что профиль не заполнен.
func (p Profile) IsEmpty() bool {
	return p == Profile{}
}
