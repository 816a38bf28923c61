package config

import "golang.org/x/text/unicode/norm"

// CanonicalName returns the NFC normalization of a category name.
// Category names typed at a shell and names stored in the document can
// differ in Unicode composition while being the same text; lookups
// compare canonical forms so "café" matches "café" however it was
// composed.
func CanonicalName(name string) string {
	return norm.NFC.String(name)
}

// Lookup finds a category by name. Exact matches win; otherwise the
// document is scanned for an NFC-canonical match. The second return is
// the stored key, which callers need when writing the category back.
func (d Document) Lookup(name string) (*Category, string, bool) {
	if cat, ok := d[name]; ok {
		return cat, name, true
	}
	want := CanonicalName(name)
	for key, cat := range d {
		if CanonicalName(key) == want {
			return cat, key, true
		}
	}
	return nil, "", false
}
