package listquery

import (
	"reflect"
	"testing"
)

type row struct {
	ID       string
	Name     string
	Category string
}

var fixtures = []row{
	{ID: "1", Name: "Almonds", Category: "Nuts"},
	{ID: "2", Name: "Cashews", Category: "Nuts"},
	{ID: "3", Name: "Dried Apricots", Category: "Dried Fruits"},
	{ID: "4", Name: "Walnuts", Category: "Nuts"},
	{ID: "5", Name: "Raisins", Category: "Dried Fruits"},
}

func names(items []row) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.Name
	}
	return out
}

func TestRunSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"case insensitive", "ALMOND", []string{"Almonds"}},
		{"substring", "nuts", []string{"Walnuts"}},
		{"whitespace trimmed", "  raisins  ", []string{"Raisins"}},
		{"no match", "pistachio", []string{}},
		{"empty matches all", "", []string{"Almonds", "Cashews", "Dried Apricots", "Walnuts", "Raisins"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(fixtures, Params{Search: tt.search},
				WithSearchFields(func(r row) []string { return []string{r.Name} }))
			if got := names(res.Items); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunFiltersPartition(t *testing.T) {
	nuts := Run(fixtures, Params{}, WithFilter(func(r row) bool { return r.Category == "Nuts" }))
	dried := Run(fixtures, Params{}, WithFilter(func(r row) bool { return r.Category == "Dried Fruits" }))

	if nuts.TotalMatches+dried.TotalMatches != len(fixtures) {
		t.Errorf("filters should partition the collection: %d + %d != %d",
			nuts.TotalMatches, dried.TotalMatches, len(fixtures))
	}
}

func TestRunFiltersCombineAND(t *testing.T) {
	res := Run(fixtures, Params{Search: "a"},
		WithSearchFields(func(r row) []string { return []string{r.Name} }),
		WithFilter(func(r row) bool { return r.Category == "Nuts" }))

	// "a" matches Almonds, Cashews, Walnuts, Dried Apricots, Raisins; the
	// category filter then keeps only the nuts.
	want := []string{"Almonds", "Cashews", "Walnuts"}
	if got := names(res.Items); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		size      int
		wantPage  int
		wantItems int
		wantPages int
	}{
		{"first page", 1, 2, 1, 2, 3},
		{"last partial page", 3, 2, 3, 1, 3},
		{"page beyond end clamps to last", 99, 2, 3, 1, 3},
		{"page below one clamps to first", 0, 2, 1, 2, 3},
		{"zero size defaults to ten", 1, 0, 1, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(fixtures, Params{Page: tt.page, PageSize: tt.size})
			if res.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", res.Page, tt.wantPage)
			}
			if len(res.Items) != tt.wantItems {
				t.Errorf("len(Items) = %d, want %d", len(res.Items), tt.wantItems)
			}
			if res.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", res.TotalPages, tt.wantPages)
			}
			if res.TotalMatches != len(fixtures) {
				t.Errorf("TotalMatches = %d, want %d", res.TotalMatches, len(fixtures))
			}
		})
	}
}

func TestRunEmptyMatchSet(t *testing.T) {
	res := Run(fixtures, Params{Search: "nothing", Page: 99},
		WithSearchFields(func(r row) []string { return []string{r.Name} }))

	if res.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", res.TotalPages)
	}
	if res.TotalMatches != 0 {
		t.Errorf("TotalMatches = %d, want 0", res.TotalMatches)
	}
	if len(res.Items) != 0 {
		t.Errorf("Items = %v, want empty", res.Items)
	}
	// The requested page is not echoed back past the (empty) end.
	if res.Page != 1 {
		t.Errorf("Page = %d, want 1", res.Page)
	}
}

func TestRunSortStable(t *testing.T) {
	res := Run(fixtures, Params{},
		WithSort(func(a, b row) bool { return a.Category < b.Category }))

	// Within each category the original order is preserved.
	want := []string{"Dried Apricots", "Raisins", "Almonds", "Cashews", "Walnuts"}
	if got := names(res.Items); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunPure(t *testing.T) {
	input := append([]row(nil), fixtures...)
	p := Params{Search: "nuts", Page: 1, PageSize: 2}
	opts := []Option[row]{
		WithSearchFields(func(r row) []string { return []string{r.Name, r.Category} }),
		WithSort(func(a, b row) bool { return a.Name < b.Name }),
	}

	first := Run(input, p, opts...)
	second := Run(input, p, opts...)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%v\n%v", first, second)
	}
	if !reflect.DeepEqual(input, fixtures) {
		t.Errorf("input slice mutated: %v", input)
	}
}
