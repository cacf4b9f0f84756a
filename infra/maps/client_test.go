package maps

import (
	"testing"

	"firedispatch/core/model"
	"firedispatch/infra/logger"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New("", logger.NopLogger{}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		types []string
		want  model.Category
	}{
		{[]string{"shopping_mall", "point_of_interest"}, model.CategoryCommercial},
		{[]string{"point_of_interest", "restaurant"}, model.CategoryCommercial},
		{[]string{"lodging"}, model.CategoryResidential},
		{[]string{"point_of_interest"}, model.CategoryUnknown},
		{nil, model.CategoryUnknown},
	}
	for _, c := range cases {
		if got := categoryFor(c.types); got != c.want {
			t.Errorf("categoryFor(%v) = %s, want %s", c.types, got, c.want)
		}
	}
}
