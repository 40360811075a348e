package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/drfriend/internal/models"
)

// EmailPattern упрощенный формат адреса почты: local@domain.tld
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PhonePattern допускает цифры, пробелы, скобки, дефисы и ведущий +
// Длина: 5-20 символов
var PhonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{5,20}$`)

const (
	// MaxProfileNameLen максимальная длина имени в профиле
	MaxProfileNameLen = 100
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
)

// ValidateEmail проверяет email. Пустое значение допустимо
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}

// ValidatePhone проверяет номер телефона. Пустое значение допустимо
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	if !PhonePattern.MatchString(phone) {
		return fmt.Errorf("phone can only contain digits, spaces, parentheses, dashes and a leading +")
	}

	return nil
}

// ValidateImage проверяет, что аватар задан как data URI изображения. Пустое значение допустимо
func ValidateImage(image string) error {
	if image == "" {
		return nil
	}

	if !strings.HasPrefix(image, "data:image/") {
		return fmt.Errorf("image must be a data URI with an image/* type")
	}

	return nil
}

// ValidateProfile проверяет все поля профиля и возвращает все найденные ошибки
func ValidateProfile(p models.Profile) error {
	var errs []error

	if len(p.Name) > MaxProfileNameLen {
		errs = append(errs, fmt.Errorf("name must not exceed %d characters", MaxProfileNameLen))
	}
	errs = append(errs,
		ValidateEmail(p.Email),
		ValidatePhone(p.Phone),
		ValidateImage(p.Image),
	)

	return errors.Join(errs...)
}
