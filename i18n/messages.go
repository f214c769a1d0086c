// Package i18n renders user-facing text for machine-readable codes (error
// kinds and alert codes). Indonesian and English catalogs ship built in; the
// API layer picks the language from the Accept-Language header.
package i18n

import "strings"

const (
	LangEN = "en"
	LangID = "id"
)

var catalogs = map[string]map[string]string{
	LangEN: {
		// error kinds
		"invalid_portion":       "portion weight must be greater than zero",
		"unknown_food":          "food is not in the catalog",
		"invalid_portion_index": "portion selection is no longer valid for this food",
		"invalid_target":        "daily calorie target must be greater than zero",
		"validation":            "request is invalid",
		"not_found":             "data not found",
		"conflict":              "data conflicts with existing records",
		"unauthorized":          "authentication required",
		"storage":               "storage operation failed",
		"sync_unavailable":      "sync service is unavailable",
		"internal":              "internal error",

		// alert codes
		"SALT_EXCESS":  "sodium intake is above the daily safe limit",
		"SUGAR_EXCESS": "sugar intake is above the daily recommended limit",
		"FIBER_LOW":    "fiber intake is below the daily recommendation",
		"CALORIE_LOW":  "calorie intake is well below the daily target",
		"CALORIE_HIGH": "calorie intake is well above the daily target",
	},
	LangID: {
		"invalid_portion":       "berat porsi harus lebih dari nol",
		"unknown_food":          "makanan tidak ditemukan di katalog",
		"invalid_portion_index": "pilihan porsi sudah tidak berlaku untuk makanan ini",
		"invalid_target":        "target kalori harian harus lebih dari nol",
		"validation":            "permintaan tidak valid",
		"not_found":             "data tidak ditemukan",
		"conflict":              "data bentrok dengan data yang sudah ada",
		"unauthorized":          "autentikasi diperlukan",
		"storage":               "operasi penyimpanan gagal",
		"sync_unavailable":      "layanan sinkronisasi tidak tersedia",
		"internal":              "kesalahan internal",

		"SALT_EXCESS":  "asupan natrium melebihi batas aman harian",
		"SUGAR_EXCESS": "asupan gula melebihi batas anjuran harian",
		"FIBER_LOW":    "asupan serat di bawah anjuran harian",
		"CALORIE_LOW":  "asupan kalori jauh di bawah target harian",
		"CALORIE_HIGH": "asupan kalori jauh di atas target harian",
	},
}

// T renders code in the given language, falling back to English, then to the
// bare code so an unmapped code is still visible rather than blank.
func T(lang, code string) string {
	if m, ok := catalogs[lang]; ok {
		if msg, ok := m[code]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[LangEN][code]; ok {
		return msg
	}
	return code
}

// FromAcceptLanguage maps an Accept-Language header to a supported language.
// Indonesian wins when it appears anywhere in the list; default is English.
func FromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if tag == LangID || strings.HasPrefix(tag, "id-") {
			return LangID
		}
	}
	return LangEN
}
