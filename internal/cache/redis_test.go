package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoodSearchKey(t *testing.T) {
	base := foodSearchKey(1, "arroz", "Cereais", 50)

	assert.Equal(t, base, foodSearchKey(1, "arroz", "Cereais", 50))
	assert.NotEqual(t, base, foodSearchKey(2, "arroz", "Cereais", 50))
	assert.NotEqual(t, base, foodSearchKey(1, "feijao", "Cereais", 50))
	assert.NotEqual(t, base, foodSearchKey(1, "arroz", "", 50))
	assert.NotEqual(t, base, foodSearchKey(1, "arroz", "Cereais", 10))
}
