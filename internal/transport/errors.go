package transport

import (
	"errors"
	"fmt"
)

// APIError - типизированная ошибка бэкенда: HTTP-статус и разобранное тело ответа
type APIError struct {
	Status int
	Data   any
}

// Error реализует интерфейс error
func (e *APIError) Error() string {
	if msg := extractErrorMessage(e.Data); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsAPIStatus сообщает, является ли ошибка APIError с одним из указанных статусов
func IsAPIStatus(err error, statuses ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, status := range statuses {
		if apiErr.Status == status {
			return true
		}
	}
	return false
}

// extractErrorMessage достает человекочитаемое сообщение из тела ошибки:
// строка целиком, иначе строковое поле detail, иначе первое строковое поле
// объекта либо первый элемент первого массива строк.
func extractErrorMessage(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if detail, ok := v["detail"].(string); ok {
			return detail
		}
		for _, value := range v {
			if list, ok := value.([]any); ok && len(list) > 0 {
				if first, ok := list[0].(string); ok {
					return first
				}
			}
			if s, ok := value.(string); ok {
				return s
			}
		}
	}
	return ""
}
