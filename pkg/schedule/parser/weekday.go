package parser

import "strings"

var weekdays = map[string]string{
	"ПН": "Понедельник",
	"ВТ": "Вторник",
	"СР": "Среда",
	"ЧТ": "Четверг",
	"ПТ": "Пятница",
	"СБ": "Суббота",
}

// CanonicalDay maps a weekday abbreviation such as "ПН" to its full name.
// Full names are accepted in any case. Unknown tokens are returned with
// surrounding whitespace removed and ok set to false.
func CanonicalDay(token string) (name string, ok bool) {
	trimmed := strings.TrimSpace(token)
	if name, ok := weekdays[strings.ToUpper(trimmed)]; ok {
		return name, true
	}
	for _, name := range weekdays {
		if strings.EqualFold(name, trimmed) {
			return name, true
		}
	}
	return trimmed, false
}
