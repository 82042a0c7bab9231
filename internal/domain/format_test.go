package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1h 30min", FormatDuration(90))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "45min", FormatDuration(45))
	assert.Equal(t, "0min", FormatDuration(0))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("jane doe"))
	assert.Equal(t, "MC", Initials("Marie Claire Dupont"))
	assert.Equal(t, "É", Initials("élodie"))
	assert.Equal(t, "", Initials("   "))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "85 €", FormatPrice(85))
	assert.Equal(t, "0 €", FormatPrice(0))
	assert.Equal(t, "42,50 €", FormatPrice(42.5))
}
