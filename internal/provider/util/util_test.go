package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a \n b\t c  "))
	assert.Equal(t, "", CleanText("   "))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "x", Default(" x ", NoTitle))
	assert.Equal(t, NoTitle, Default("  ", NoTitle))
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Location: Austin, TX", "Austin, TX"},
		{"Remote, Remote, US", "Remote, US"},
		{"  ", ""},
		{"Berlin", "Berlin"},
		{"austin, Austin, TX", "austin, TX"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeLocation(tc.in), "in=%q", tc.in)
	}
}

func TestInferRemote(t *testing.T) {
	assert.True(t, InferRemote("Software Engineer", "Remote, US"))
	assert.True(t, InferRemote("Engineer", "", "great work from home policy"))
	assert.False(t, InferRemote("Engineer", "Austin, TX", "on site"))
}

func TestClassifyExperience(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Senior Software Engineer", "Senior"},
		{"Sr. Backend Developer", "Senior"},
		{"Lead Designer", "Lead"},
		{"Principal Engineer", "Principal"},
		{"Junior Analyst", "Junior"},
		{"Software Engineer", "Mid-level"},
		// senior wins over lead when both appear, first match rules
		{"Senior Tech Lead", "Senior"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyExperience(tc.title), "title=%q", tc.title)
	}
}

func TestPickStringAliasOrder(t *testing.T) {
	m := map[string]any{"job_title": "Engineer", "title": "Wrong"}
	assert.Equal(t, "Engineer", PickString(m, "job_title", "title"))
	assert.Equal(t, "Wrong", PickString(m, "missing", "title"))
	assert.Equal(t, "", PickString(m, "missing"))
}

func TestPickStringSkipsBlankAlias(t *testing.T) {
	m := map[string]any{"a": "  ", "b": "real"}
	assert.Equal(t, "real", PickString(m, "a", "b"))
}

func TestPickFloat(t *testing.T) {
	m := map[string]any{"min": float64(120000), "str": "95000", "zero": float64(0)}
	assert.Equal(t, float64(120000), PickFloat(m, "min"))
	assert.Equal(t, float64(95000), PickFloat(m, "str"))
	assert.Equal(t, float64(0), PickFloat(m, "zero", "missing"))
}

func TestPickBool(t *testing.T) {
	m := map[string]any{"remote": true, "s": "true", "f": false}
	assert.True(t, PickBool(m, "remote"))
	assert.True(t, PickBool(m, "f", "s"))
	assert.False(t, PickBool(m, "f", "missing"))
}

func TestPickStringsNested(t *testing.T) {
	m := map[string]any{
		"highlights": map[string]any{
			"Qualifications": []any{"Go", "SQL"},
		},
	}
	assert.Equal(t, []string{"Go", "SQL"}, PickStrings(m, "highlights"))
	assert.Nil(t, PickStrings(m, "missing"))
}
