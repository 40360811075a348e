package api

// RecordInfo представляет метаданные записи без содержимого файла
type RecordInfo struct {
	ID       string `json:"id"`       // уникальный идентификатор записи
	Name     string `json:"name"`     // отображаемое имя файла
	Mime     string `json:"mime"`     // MIME-тип, может быть пустым
	Date     string `json:"date"`     // время загрузки
	Category string `json:"category"` // категория (для корзины: исходная категория)
	Size     int    `json:"size"`     // размер файла в байтах
}

// CountsResponse представляет количество записей по категориям
type CountsResponse struct {
	Counts map[string]int `json:"counts"` // категория -> количество записей
	Total  int            `json:"total"`  // общее количество записей
}

// RecordListResponse представляет список записей одной категории
type RecordListResponse struct {
	Category string       `json:"category"`
	Records  []RecordInfo `json:"records"` // в порядке загрузки
}

// TrashListResponse представляет содержимое корзины
type TrashListResponse struct {
	Entries []RecordInfo `json:"entries"` // новые первыми
}
