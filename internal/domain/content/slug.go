package content

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

/*
	Slug helpers
	------------
	- Responsible ONLY for generating URL-safe slugs from (Vietnamese)
	  titles and keeping them unique per table.
	- No content logic here.
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

var diacriticFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// MakeSlug generates a URL-safe base slug from a title. Vietnamese
// diacritics are folded away so titles slugify cleanly.
// Example: "Rèm vải cao cấp" -> "rem-vai-cao-cap"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))

	// đ has no combining mark, NFD leaves it alone.
	base = strings.ReplaceAll(base, "đ", "d")

	if folded, _, err := transform.String(diacriticFolder, base); err == nil {
		base = folded
	}

	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "bai-viet"
	}
	return base
}

// EnsureUniqueSlug appends a numeric suffix until no row in table claims
// the slug. excludeID skips the record being updated.
func EnsureUniqueSlug(db *gorm.DB, table, base, excludeID string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		q := db.Table(table).Where("slug = ?", slug)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
