package driver

import "strings"

// isValidCPF проверяет только форму: ровно 11 цифр.
func isValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, char := range cpf {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 8 {
		return false
	}
	if strings.HasPrefix(phone, "+") {
		phone = phone[1:]
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
