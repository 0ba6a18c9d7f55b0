package gogrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_splitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"UserFirstName", []string{"User", "First", "Name"}},
		{"UserID", []string{"User", "ID"}},
		{"HTTPCode", []string{"HTTP", "Code"}},
		{"Address2Line", []string{"Address2", "Line"}},
		{"created_at", []string{"created", "at"}},
		{"Name", []string{"Name"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, splitWords(tt.in))
		})
	}
}

func Test_shortLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UserFirstName", "First Name"},
		{"UserID", "ID"},
		{"Name", "Name"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := shortLabel(tt.in); got != tt.want {
				t.Errorf("shortLabel(%q) = %q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func Test_plainLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text kept", "Approve", "Approve"},
		{"markup stripped", "<b>Approve</b>", "Approve"},
		{"script dropped", "Send<script>alert(1)</script>", "Send"},
		{"entities are not escaped twice", "Approve & send", "Approve & send"},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, plainLabel(tt.in))
		})
	}
}

func Test_buildHeader(t *testing.T) {
	fields := []string{"ID", "UserName", "UserCity"}

	tests := []struct {
		name  string
		opts  rowOptions
		short bool
		want  []HeaderCell
	}{
		{
			name: "defaults",
			opts: rowOptions{showPrimaryKey: true, showActions: true},
			want: []HeaderCell{
				{Field: "ID", Label: "#"},
				{Field: "UserName", Label: "UserName"},
				{Field: "UserCity", Label: "UserCity"},
				{Label: "Actions"},
			},
		},
		{
			name:  "checkbox, hidden key, short labels",
			opts:  rowOptions{showCheckBox: true},
			short: true,
			want: []HeaderCell{
				{Label: "#"},
				{Field: "UserName", Label: "Name"},
				{Field: "UserCity", Label: "City"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildHeader(fields, "ID", tt.opts, tt.short))
		})
	}
}
