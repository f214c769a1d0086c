package i18n

import "testing"

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		code string
		want string
	}{
		{"indonesian hit", LangID, "unknown_food", "makanan tidak ditemukan di katalog"},
		{"english hit", LangEN, "unknown_food", "food is not in the catalog"},
		{"unknown lang falls back to english", "fr", "FIBER_LOW", "fiber intake is below the daily recommendation"},
		{"unknown code returned verbatim", LangID, "SOME_NEW_CODE", "SOME_NEW_CODE"},
		{"alert code indonesian", LangID, "SALT_EXCESS", "asupan natrium melebihi batas aman harian"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.code); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.code, got, tt.want)
			}
		})
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"id-ID,id;q=0.9,en;q=0.8", LangID},
		{"en-US,en;q=0.9", LangEN},
		{"ID", LangID},
		{"", LangEN},
		{"fr-FR, id;q=0.5", LangID},
	}
	for _, tt := range tests {
		if got := FromAcceptLanguage(tt.header); got != tt.want {
			t.Errorf("FromAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
