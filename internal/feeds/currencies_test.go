package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticCurrencies []string

func (s staticCurrencies) GetCurrencies() []string { return s }

func TestCurrencies(t *testing.T) {
	ch := Currencies(staticCurrencies{"EUR", "USD"})

	got, ok := <-ch
	assert.True(t, ok)
	assert.Equal(t, []string{"EUR", "USD"}, got)

	_, ok = <-ch
	assert.False(t, ok, "channel should close after the single emission")
}
