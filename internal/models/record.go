package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Category представляет категорию документа.
// Набор категорий фиксирован: bill, prescription, report, other.
type Category string

const (
	CategoryBill         Category = "bill"         // счета
	CategoryPrescription Category = "prescription" // рецепты
	CategoryReport       Category = "report"       // медицинские отчеты
	CategoryOther        Category = "other"        // все остальное
)

// Categories возвращает фиксированный набор категорий в порядке отображения.
// Этот же порядок используется для ключей JSON документа записей.
func Categories() []Category {
	return []Category{CategoryBill, CategoryPrescription, CategoryReport, CategoryOther}
}

// Valid сообщает, входит ли категория в фиксированный набор.
func (c Category) Valid() bool {
	switch c {
	case CategoryBill, CategoryPrescription, CategoryReport, CategoryOther:
		return true
	}
	return false
}

// Title возвращает название категории с заглавной буквы ("Bill", "Report").
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory разбирает строку в категорию из фиксированного набора.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q, use one of: bill, prescription, report, other", s)
	}
	return c, nil
}

// FileRecord представляет сохраненный файл.
// Содержимое файла целиком встроено в запись в виде data URI.
type FileRecord struct {
	ID   string `json:"id"`   // ID уникальный идентификатор (UUIDv7: время + случайная часть)
	Name string `json:"name"` // Name отображаемое имя файла
	Data string `json:"data"` // Data содержимое файла в виде base64 data URI
	Mime string `json:"mime"` // Mime MIME-тип файла, может быть пустым
	Date string `json:"date"` // Date время создания в читаемом виде
}

// RecordSet представляет хранилище записей: категория -> упорядоченный список.
// Порядок внутри списка совпадает с порядком загрузки файлов.
type RecordSet map[Category][]FileRecord

// NewRecordSet создает RecordSet со всеми фиксированными категориями и пустыми списками.
func NewRecordSet() RecordSet {
	set := make(RecordSet, 4)
	set.Normalize()
	return set
}

// Normalize гарантирует, что каждая фиксированная категория имеет не-nil список.
// Неизвестные категории сохраняются как есть.
func (s RecordSet) Normalize() {
	for _, c := range Categories() {
		if s[c] == nil {
			s[c] = []FileRecord{}
		}
	}
	for c, list := range s {
		if list == nil {
			s[c] = []FileRecord{}
		}
	}
}

// Keys возвращает категории: сначала фиксированные в каноническом порядке,
// затем остальные ключи в лексикографическом порядке.
func (s RecordSet) Keys() []Category {
	keys := Categories()
	var extra []Category
	for c := range s {
		if !c.Valid() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(keys, extra...)
}

// Find ищет запись по ID во всех категориях.
func (s RecordSet) Find(id string) (Category, int, bool) {
	for _, c := range s.Keys() {
		for i, rec := range s[c] {
			if rec.ID == id {
				return c, i, true
			}
		}
	}
	return "", -1, false
}

// Counts возвращает количество записей в каждой категории.
func (s RecordSet) Counts() map[Category]int {
	counts := make(map[Category]int, len(s))
	for _, c := range s.Keys() {
		counts[c] = len(s[c])
	}
	return counts
}

// Append добавляет запись в конец списка категории, создавая список при необходимости.
func (s RecordSet) Append(c Category, rec FileRecord) {
	s[c] = append(s[c], rec)
}

// RemoveAt удаляет запись по позиции со сдвигом последующих элементов.
// Возвращает false, если индекс вне диапазона; RecordSet при этом не меняется.
func (s RecordSet) RemoveAt(c Category, index int) (FileRecord, bool) {
	list := s[c]
	if index < 0 || index >= len(list) {
		return FileRecord{}, false
	}
	rec := list[index]
	s[c] = slices.Delete(list, index, index+1)
	return rec, true
}

// Clone создает копию RecordSet, списки не разделяются с оригиналом.
func (s RecordSet) Clone() RecordSet {
	out := make(RecordSet, len(s))
	for c, list := range s {
		cp := make([]FileRecord, len(list))
		copy(cp, list)
		out[c] = cp
	}
	return out
}

// MarshalJSON сериализует RecordSet с детерминированным порядком ключей,
// чтобы повторное сохранение загруженного документа давало идентичные байты.
func (s RecordSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s.Keys() {
		list := s[c]
		if list == nil {
			list = []FileRecord{}
		}

		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal category %s: %w", c, err)
		}

		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
