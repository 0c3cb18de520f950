package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an email address and consolidates
// consecutive dots in the local part. Input without exactly one @ is returned
// trimmed and lowercased as-is.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := dotRegex.ReplaceAllString(parts[0], ".")
	local = strings.Trim(local, ".")

	return local + "@" + parts[1]
}

// NormalizePhone strips everything but digits, keeping a leading plus.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if plus {
		return "+" + digits
	}
	return digits
}

// NormalizeCreditCard strips formatting so the number is ready for a Luhn
// check.
func NormalizeCreditCard(cardNumber string) string {
	return nonDigitRegex.ReplaceAllString(cardNumber, "")
}
