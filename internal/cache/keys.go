package cache

import (
	"fmt"
	"sort"
	"strings"
)

/*
Ключи кэша детерминированы: два логически одинаковых запроса
(включая другой порядок параметров) дают один и тот же ключ.
Слагаемые нормализуются - текст приводится к нижнему регистру
и обрезается, множества сортируются.
*/

// JobKey - ключ одиночной вакансии
func JobKey(id string) string {
	return "job:" + id
}

// JobListKey строит ключ листинга из нормализованных параметров фильтра.
// Порядок полей фиксирован, поэтому ключ не зависит от порядка
// query-параметров клиента.
func JobListKey(query, location string, jobType string, locationTypes, experienceLevels []string, featured *bool, page, pageSize int) string {
	var b strings.Builder
	b.WriteString("jobs:list:")

	b.WriteString("q=")
	b.WriteString(normalize(query))
	b.WriteString("&location=")
	b.WriteString(normalize(location))
	b.WriteString("&job_type=")
	b.WriteString(normalize(jobType))
	b.WriteString("&location_types=")
	b.WriteString(normalizeSet(locationTypes))
	b.WriteString("&experience_levels=")
	b.WriteString(normalizeSet(experienceLevels))
	b.WriteString("&featured=")
	if featured != nil {
		b.WriteString(fmt.Sprintf("%t", *featured))
	}
	b.WriteString(fmt.Sprintf("&page=%d&page_size=%d", page, pageSize))

	return b.String()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSet сортирует копию множества, не трогая аргумент
func normalizeSet(values []string) string {
	if len(values) == 0 {
		return ""
	}
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			normalized = append(normalized, n)
		}
	}
	sort.Strings(normalized)
	return strings.Join(normalized, ",")
}
