package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/drfriend/internal/models"
)

// MaxFileNameLen максимальная длина имени файла в байтах
const MaxFileNameLen = 255

// ValidateCategory проверяет, что категория входит в фиксированный набор
// Регистр и пробелы по краям не учитываются
func ValidateCategory(category string) error {
	_, err := models.ParseCategory(category)
	return err
}

// ValidateFileName проверяет отображаемое имя файла
// Имя не может быть пустым, содержать разделители пути или управляющие символы
func ValidateFileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}

	if len(name) > MaxFileNameLen {
		return fmt.Errorf("file name must not exceed %d bytes", MaxFileNameLen)
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("file name must be valid UTF-8")
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name must not contain path separators")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("file name %q is reserved", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("file name must not contain control characters")
		}
	}

	return nil
}
