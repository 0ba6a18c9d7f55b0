package gogrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Direction_Valid(t *testing.T) {
	tests := []struct {
		name  string
		in    Direction
		valid bool
	}{
		{"ASC valid", DirectionASC, true},
		{"DESC valid", DirectionDESC, true},
		{"lowercase invalid", "asc", false},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.valid {
			t.Errorf("%s: Valid=%v want %v", tt.name, got, tt.valid)
		}
	}
}

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name string
		ord  Orderings
		ok   bool
	}{
		{"empty is allowed", Orderings{}, true},
		{"invalid direction", Orderings{{Column: "id", Direction: "bad"}}, false},
		{"forbidden symbols", Orderings{{Column: "id; DROP TABLE users", Direction: DirectionASC}}, false},
		{"valid list", Orderings{{Column: "t.id", Direction: DirectionASC}}, true},
	}
	for _, tt := range tests {
		if err := tt.ord.validate(); (err == nil) != tt.ok {
			t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
		}
	}
}

func Test_Orderings_ToSQL(t *testing.T) {
	ord := Orderings{{Column: "a", Direction: DirectionASC}, {Column: "b", Direction: DirectionDESC}}
	require.Equal(t, "a ASC, b DESC", ord.ToSQL())
}

func Test_ParseSort(t *testing.T) {
	mapping := ColumnMapping{
		"id":   "t.id",
		"name": "t.name",
	}

	tests := []struct {
		name  string
		in    []string
		ok    bool
		first OrderBy
	}{
		{"invalid format", []string{"id"}, false, OrderBy{}},
		{"unknown alias", []string{"idx asc"}, false, OrderBy{}},
		{"invalid direction", []string{"id up"}, false, OrderBy{}},
		{"valid asc", []string{"id asc"}, true, OrderBy{Column: "t.id", Direction: DirectionASC}},
		{"valid desc", []string{" name  desc "}, true, OrderBy{Column: "t.name", Direction: DirectionDESC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.in, mapping)
			if (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
				return
			}
			if tt.ok {
				if len(got) == 0 || got[0] != tt.first {
					t.Errorf("%s: first=%v want %v", tt.name, got, tt.first)
				}
			}
		})
	}
}

func Test_Sort(t *testing.T) {
	users := []tUser{
		{ID: 3, Name: "Carol", UserCity: "Oslo"},
		{ID: 1, Name: "Alice", UserCity: "Rome"},
		{ID: 2, Name: "Bob", UserCity: "Oslo"},
	}

	tests := []struct {
		name string
		ord  Orderings
		want []int
	}{
		{"by id asc", Orderings{{Column: "ID", Direction: DirectionASC}}, []int{1, 2, 3}},
		{"by name desc", Orderings{{Column: "Name", Direction: DirectionDESC}}, []int{3, 2, 1}},
		{"by city then id", Orderings{{Column: "UserCity", Direction: DirectionASC}, {Column: "ID", Direction: DirectionASC}}, []int{2, 3, 1}},
		{"no orderings keeps input", nil, []int{3, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sort(users, tt.ord, tUserGetters)
			require.NoError(t, err)

			ids := make([]int, 0, len(got))
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}

	require.Equal(t, 3, users[0].ID, "input must not be reordered")
}

func Test_Sort_UnknownColumn(t *testing.T) {
	_, err := Sort([]tUser{{ID: 1}}, Orderings{{Column: "Nme", Direction: DirectionASC}}, tUserGetters)
	require.ErrorIs(t, err, ErrConfig)
	require.Contains(t, err.Error(), "closest: 'Name'")
}

func Test_compareValues(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"mixed numbers", int64(5), 4.5, 1},
		{"strings", "b", "a", 1},
		{"bools", false, true, -1},
		{"times", now, now.Add(time.Second), -1},
		{"nil first", nil, 0, -1},
		{"equal", "x", "x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.a, tt.b); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}
