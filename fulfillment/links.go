// Package fulfillment maps purchased product codes to their download URLs.
//
// The table is maintained by hand and must be reconciled with the catalog
// whenever products are added or renamed; Resolve returning an empty list
// for a paid order means the table has drifted and the order stays in the
// processing state until the table is fixed.
package fulfillment

// downloadLinks is keyed by models.Product.Code.
var downloadLinks = map[string][]string{
	"design-snowman": {
		"https://downloads.christmasfun.store/designs/snowman-a4.pdf",
		"https://downloads.christmasfun.store/designs/snowman-letter.pdf",
	},
	"design-reindeer": {
		"https://downloads.christmasfun.store/designs/reindeer-a4.pdf",
		"https://downloads.christmasfun.store/designs/reindeer-letter.pdf",
	},
	"design-elf": {
		"https://downloads.christmasfun.store/designs/elf-a4.pdf",
		"https://downloads.christmasfun.store/designs/elf-letter.pdf",
	},
	"note-santa-1": {
		"https://downloads.christmasfun.store/notes/santa-note-1.pdf",
	},
	"note-santa-2": {
		"https://downloads.christmasfun.store/notes/santa-note-2.pdf",
	},
	"bundle-complete": {
		"https://downloads.christmasfun.store/bundles/complete-collection.zip",
	},
}

// Resolve returns the download URLs for a product code. An unknown code
// yields an empty list; callers treat that as "not fulfillable yet", not
// as an error.
func Resolve(productCode string) []string {
	links := downloadLinks[productCode]
	out := make([]string, len(links))
	copy(out, links)
	return out
}

// MissingFrom reports which of the given catalog codes have no entry in
// the download table. Logged at startup so drift is caught before a buyer
// hits it.
func MissingFrom(catalogCodes []string) []string {
	var missing []string
	for _, code := range catalogCodes {
		if _, ok := downloadLinks[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing
}
