package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "€0.00", FormatEUR(0))
	assert.Equal(t, "€59.00", FormatEUR(59))
	assert.Equal(t, "€99.00", FormatEUR(99))
	assert.Equal(t, "€1,250.50", FormatEUR(1250.5))
	assert.Equal(t, "€1,000,000.00", FormatEUR(1000000))
	assert.Equal(t, "€15.99", FormatEUR(15.994))
}
