package demande

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

func isValidContact(contact entities.Contact) bool {
	return strings.TrimSpace(contact.Nom) != "" && isValidPhone(contact.Telephone)
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
