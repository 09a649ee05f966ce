package util

import (
	"encoding/json"
	"fmt"
)

// ParseStringify : глубокая копия значения через JSON
func ParseStringify[T any](value T) (T, error) {
	var result T

	data, err := json.Marshal(value)
	if err != nil {
		return result, fmt.Errorf("ошибка сериализации: %w", err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("ошибка десериализации: %w", err)
	}

	return result, nil
}
