package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		params map[string]string
		want   string
	}{
		{
			name:   "sorted params",
			branch: "list",
			params: map[string]string{"page": "2", "limit": "15", "language": "english"},
			want:   "voices:list?language=english&limit=15&page=2",
		},
		{
			name:   "empty values dropped",
			branch: "recent",
			params: map[string]string{"page": "1", "limit": "15", "language": ""},
			want:   "voices:recent?limit=15&page=1",
		},
		{
			name:   "no params",
			branch: "recent",
			want:   "voices:recent",
		},
		{
			name:   "values escaped",
			branch: "search",
			params: map[string]string{"query": "a&b=c"},
			want:   "voices:search?query=a%26b%3Dc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildKey("voices", tt.branch, tt.params))
		})
	}
}

func TestBuildKey_BranchesDoNotCollide(t *testing.T) {
	params := map[string]string{"language": "english", "page": "1", "limit": "15"}
	assert.NotEqual(t, BuildKey("voices", "list", params), BuildKey("voices", "search", params))
}

func TestBuildKey_Deterministic(t *testing.T) {
	a := BuildKey("voices", "list", map[string]string{"a": "1", "b": "2", "c": "3"})
	for i := 0; i < 20; i++ {
		assert.Equal(t, a, BuildKey("voices", "list", map[string]string{"c": "3", "b": "2", "a": "1"}))
	}
}
