// Package query описывает предикаты фильтрации, сортировки и лимита,
// которые сервисы передают в List-вызовы коллекций.
package query

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAttribute = errors.New("неизвестный атрибут")

type Method string

const (
	MethodEqual     Method = "equal"
	MethodContains  Method = "contains"
	MethodOr        Method = "or"
	MethodOrderAsc  Method = "orderAsc"
	MethodOrderDesc Method = "orderDesc"
	MethodLimit     Method = "limit"
)

type Query struct {
	Method    Method
	Attribute string
	Values    []any
	Queries   []Query
}

// Equal : атрибут равен одному из значений
func Equal[T any](attribute string, values ...T) Query {
	return Query{Method: MethodEqual, Attribute: attribute, Values: toAny(values)}
}

// Contains : подстрока для строковых атрибутов, вхождение элемента для массивов
func Contains[T any](attribute string, values ...T) Query {
	return Query{Method: MethodContains, Attribute: attribute, Values: toAny(values)}
}

func Or(queries ...Query) Query {
	return Query{Method: MethodOr, Queries: queries}
}

func OrderAsc(attribute string) Query {
	return Query{Method: MethodOrderAsc, Attribute: attribute}
}

func OrderDesc(attribute string) Query {
	return Query{Method: MethodOrderDesc, Attribute: attribute}
}

func Limit(limit int) Query {
	return Query{Method: MethodLimit, Values: []any{limit}}
}

// String : отладочное представление, например or(equal("owner",[u1]),contains("users",[a@b.c]))
func (q Query) String() string {
	switch q.Method {
	case MethodOr:
		parts := make([]string, 0, len(q.Queries))
		for _, sub := range q.Queries {
			parts = append(parts, sub.String())
		}
		return fmt.Sprintf("or(%s)", strings.Join(parts, ","))
	case MethodLimit:
		return fmt.Sprintf("limit(%v)", q.Values[0])
	case MethodOrderAsc, MethodOrderDesc:
		return fmt.Sprintf("%s(%q)", q.Method, q.Attribute)
	default:
		return fmt.Sprintf("%s(%q,%v)", q.Method, q.Attribute, q.Values)
	}
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
