package logo

import (
	"strings"
	"unicode"
)

// Kind binds the logo shape to one table and route.
type Kind struct {
	Route    string // "/security-mitra-logos"
	Table    string
	Prefix   string // upload name prefix
	Folder   string // remote folder
	Key      string // response key wrapping the row on update/delete
	Singular string
	Plural   string
}

var (
	SecurityMitra = Kind{
		Route:    "/security-mitra-logos",
		Table:    "security_mitra_logos",
		Prefix:   "security-mitra-logo",
		Folder:   "/security-mitra-logos",
		Key:      "logo",
		Singular: "security mitra logo",
		Plural:   "security mitra logos",
	}
	DevelopmentApp = Kind{
		Route:    "/development-app-logos",
		Table:    "development_application_logos",
		Prefix:   "dev-app-logo",
		Folder:   "/development-app-logos",
		Key:      "logo",
		Singular: "development app logo",
		Plural:   "development app logos",
	}
	Dokumentasi = Kind{
		Route:    "/dokumentasi",
		Table:    "dokumentasi",
		Prefix:   "dokumentasi",
		Folder:   "/dokumentasi",
		Key:      "dokumentasi",
		Singular: "dokumentasi",
		Plural:   "dokumentasi",
	}
)

// Kinds lists every table served by this package.
var Kinds = []Kind{SecurityMitra, DevelopmentApp, Dokumentasi}

func (k Kind) title() string {
	r := []rune(k.Singular)
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func (k Kind) resource() string {
	return strings.TrimPrefix(k.Route, "/")
}
