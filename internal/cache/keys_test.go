package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobKey(t *testing.T) {
	assert.Equal(t, "job:abc-123", JobKey("abc-123"))
}

// Логически одинаковые запросы обязаны давать один ключ независимо
// от порядка и регистра параметров
func TestJobListKey_Deterministic(t *testing.T) {
	a := JobListKey("Go Developer", "Berlin", "full_time", []string{"remote", "hybrid"}, []string{"senior", "middle"}, nil, 1, 20)
	b := JobListKey("  go developer ", "berlin", "full_time", []string{"hybrid", "remote"}, []string{"middle", "senior"}, nil, 1, 20)

	assert.Equal(t, a, b)
}

func TestJobListKey_DistinguishesFilters(t *testing.T) {
	base := JobListKey("go", "", "", nil, nil, nil, 1, 20)

	assert.NotEqual(t, base, JobListKey("rust", "", "", nil, nil, nil, 1, 20))
	assert.NotEqual(t, base, JobListKey("go", "berlin", "", nil, nil, nil, 1, 20))
	assert.NotEqual(t, base, JobListKey("go", "", "", nil, nil, nil, 2, 20))
	assert.NotEqual(t, base, JobListKey("go", "", "", nil, nil, nil, 1, 50))

	featured := true
	assert.NotEqual(t, base, JobListKey("go", "", "", nil, nil, &featured, 1, 20))
}

// Пустой флаг featured и явный false - разные запросы
func TestJobListKey_FeaturedTristate(t *testing.T) {
	off := false
	on := true

	unset := JobListKey("", "", "", nil, nil, nil, 1, 20)
	explicitOff := JobListKey("", "", "", nil, nil, &off, 1, 20)
	explicitOn := JobListKey("", "", "", nil, nil, &on, 1, 20)

	assert.NotEqual(t, unset, explicitOff)
	assert.NotEqual(t, explicitOff, explicitOn)
}

func TestJobListKey_DoesNotMutateArguments(t *testing.T) {
	types := []string{"remote", "hybrid"}
	JobListKey("", "", "", types, nil, nil, 1, 20)

	assert.Equal(t, []string{"remote", "hybrid"}, types)
}
