package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListJSONArray(t *testing.T) {
	got := StringList(`["Arrival", "City Tour"]`)
	assert.Equal(t, []string{"Arrival", "City Tour"}, got)
}

func TestStringListBraceLiteral(t *testing.T) {
	got := StringList(`{Arrival,City Tour, Sunset Point}`)
	assert.Equal(t, []string{"Arrival", "City Tour", "Sunset Point"}, got)
}

func TestStringListPlainString(t *testing.T) {
	got := StringList("Arrival and transfer")
	assert.Equal(t, []string{"Arrival and transfer"}, got)
}

func TestStringListSlicePassthrough(t *testing.T) {
	got := StringList([]string{" Arrival ", "", "City Tour"})
	assert.Equal(t, []string{"Arrival", "City Tour"}, got)
}

func TestStringListEmptyInputs(t *testing.T) {
	assert.Empty(t, StringList(nil))
	assert.Empty(t, StringList(""))
	assert.Empty(t, StringList("   "))
	assert.Empty(t, StringList("{}"))
	assert.Empty(t, StringList("[]"))
}

func TestStringListMalformedJSONIsPlainText(t *testing.T) {
	got := StringList(`[broken`)
	assert.Equal(t, []string{"[broken"}, got)
}

func TestStringListIdempotent(t *testing.T) {
	inputs := []interface{}{
		`["Arrival","City Tour"]`,
		`{Arrival,City Tour}`,
		"Arrival",
		[]string{"A", "B"},
	}
	for _, in := range inputs {
		first := StringList(in)
		second := StringList(Encode(first))
		assert.Equal(t, first, second, "input %v", in)
	}
}

func TestEncodeCanonicalForm(t *testing.T) {
	assert.Equal(t, `["Arrival","City Tour"]`, Encode([]string{"Arrival", " City Tour "}))
	assert.Equal(t, `[]`, Encode(nil))
	assert.Equal(t, `[]`, Encode([]string{"", "  "}))
}
