package models

// TrashEntry представляет запись в корзине.
// Это FileRecord плюс категория, из которой запись была удалена.
type TrashEntry struct {
	FileRecord
	Category Category `json:"category"` // Category категория происхождения
}

// NewTrashEntry создает запись корзины из FileRecord, проставляя категорию.
func NewTrashEntry(rec FileRecord, category Category) TrashEntry {
	return TrashEntry{
		FileRecord: rec,
		Category:   category,
	}
}

// Record возвращает FileRecord без поля категории.
func (e TrashEntry) Record() FileRecord {
	return e.FileRecord
}

// OriginCategory возвращает категорию, в которую запись будет восстановлена.
// Пустая категория трактуется как other.
func (e TrashEntry) OriginCategory() Category {
	if e.Category == "" {
		return CategoryOther
	}
	return e.Category
}
