package repository

import (
	"errors"
	"file-storage-server/internal/query"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("документ не найден")

type column struct {
	name  string
	array bool
}

// attributes : допустимые атрибуты коллекции и соответствующие колонки
type attributes map[string]column

var fileAttributes = attributes{
	"$id":          {name: "id"},
	"$createdAt":   {name: "created_at"},
	"$updatedAt":   {name: "updated_at"},
	"type":         {name: "type"},
	"name":         {name: "name"},
	"url":          {name: "url"},
	"extension":    {name: "extension"},
	"size":         {name: "size"},
	"owner":        {name: "owner"},
	"accountId":    {name: "account_id"},
	"users":        {name: "users", array: true},
	"bucketFileId": {name: "bucket_file_id"},
}

var userAttributes = attributes{
	"$id":        {name: "id"},
	"$createdAt": {name: "created_at"},
	"$updatedAt": {name: "updated_at"},
	"fullName":   {name: "full_name"},
	"email":      {name: "email"},
	"avatar":     {name: "avatar"},
	"accountId":  {name: "account_id"},
}

// compiledQuery : части SQL, собранные из предикатов
type compiledQuery struct {
	where   []string
	orderBy []string
	limit   string
	args    []any
}

// compileQueries : переводит предикаты в WHERE / ORDER BY / LIMIT с плейсхолдерами $n
func compileQueries(attrs attributes, queries []query.Query) (*compiledQuery, error) {
	c := &compiledQuery{}

	for _, q := range queries {
		switch q.Method {
		case query.MethodOrderAsc, query.MethodOrderDesc:
			col, err := attrs.lookup(q.Attribute)
			if err != nil {
				return nil, err
			}
			direction := "ASC"
			if q.Method == query.MethodOrderDesc {
				direction = "DESC"
			}
			c.orderBy = append(c.orderBy, col.name+" "+direction)
		case query.MethodLimit:
			if len(q.Values) != 1 {
				return nil, fmt.Errorf("limit: ожидается одно значение")
			}
			c.limit = c.bind(q.Values[0])
		default:
			fragment, err := c.predicate(attrs, q)
			if err != nil {
				return nil, err
			}
			c.where = append(c.where, fragment)
		}
	}

	return c, nil
}

func (c *compiledQuery) predicate(attrs attributes, q query.Query) (string, error) {
	switch q.Method {
	case query.MethodOr:
		if len(q.Queries) == 0 {
			return "", fmt.Errorf("or: пустой список предикатов")
		}
		parts := make([]string, 0, len(q.Queries))
		for _, sub := range q.Queries {
			fragment, err := c.predicate(attrs, sub)
			if err != nil {
				return "", err
			}
			parts = append(parts, fragment)
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil

	case query.MethodEqual:
		col, err := attrs.lookup(q.Attribute)
		if err != nil {
			return "", err
		}
		if col.array {
			return "", fmt.Errorf("equal: атрибут %q является массивом", q.Attribute)
		}
		if len(q.Values) == 0 {
			return "", fmt.Errorf("equal: нет значений для %q", q.Attribute)
		}
		if len(q.Values) == 1 {
			return col.name + " = " + c.bind(q.Values[0]), nil
		}
		placeholders := make([]string, 0, len(q.Values))
		for _, v := range q.Values {
			placeholders = append(placeholders, c.bind(v))
		}
		return col.name + " IN (" + strings.Join(placeholders, ", ") + ")", nil

	case query.MethodContains:
		col, err := attrs.lookup(q.Attribute)
		if err != nil {
			return "", err
		}
		if len(q.Values) == 0 {
			return "", fmt.Errorf("contains: нет значений для %q", q.Attribute)
		}
		parts := make([]string, 0, len(q.Values))
		for _, v := range q.Values {
			if col.array {
				parts = append(parts, c.bind(v)+" = ANY("+col.name+")")
			} else {
				parts = append(parts, "strpos("+col.name+", "+c.bind(v)+") > 0")
			}
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil
	}

	return "", fmt.Errorf("неподдерживаемый метод %q", q.Method)
}

func (c *compiledQuery) bind(value any) string {
	c.args = append(c.args, value)
	return fmt.Sprintf("$%d", len(c.args))
}

// suffix : хвост запроса после FROM
func (c *compiledQuery) suffix() string {
	var b strings.Builder
	if len(c.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(c.where, " AND "))
	}
	if len(c.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(c.orderBy, ", "))
	}
	if c.limit != "" {
		b.WriteString(" LIMIT ")
		b.WriteString(c.limit)
	}
	return b.String()
}

func (a attributes) lookup(attribute string) (column, error) {
	col, ok := a[attribute]
	if !ok {
		return column{}, fmt.Errorf("%w: %q", query.ErrUnknownAttribute, attribute)
	}
	return col, nil
}
