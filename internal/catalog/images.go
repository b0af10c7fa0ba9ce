package catalog

import (
	"encoding/json"
	"strings"
)

// PlaceholderImageURL is shown when a product has no usable image or an
// image fails to load.
const PlaceholderImageURL = "https://via.placeholder.com/100"

type ImageKind int

const (
	// ImagePlain is a string used as a URL as-is.
	ImagePlain ImageKind = iota
	// ImageEncodedArray is a string holding a JSON-encoded array, e.g.
	// `["https://x/1.jpg"]`.
	ImageEncodedArray
	// ImageInvalid is a list element that was not a JSON string.
	ImageInvalid
)

type ImageEntry struct {
	Kind ImageKind
	Raw  string
}

// ImageField is the decoded "images" attribute. Present is false when the
// attribute was missing, null, or not a list.
type ImageField struct {
	Present bool
	Entries []ImageEntry
}

var imageResidue = strings.NewReplacer("[", "", "]", "", `"`, "", `\`, "")

func NewImageEntry(raw string) ImageEntry {
	if strings.HasPrefix(raw, "[") {
		return ImageEntry{Kind: ImageEncodedArray, Raw: raw}
	}
	return ImageEntry{Kind: ImagePlain, Raw: raw}
}

// NewImageField builds a present field from plain strings.
func NewImageField(raws ...string) ImageField {
	f := ImageField{Present: true, Entries: make([]ImageEntry, 0, len(raws))}
	for _, raw := range raws {
		f.Entries = append(f.Entries, NewImageEntry(raw))
	}
	return f
}

// UnmarshalJSON never fails: values that are not lists decode as a missing
// field and non-string elements as ImageInvalid entries.
func (f *ImageField) UnmarshalJSON(data []byte) error {
	*f = ImageField{}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil
	}
	f.Present = true
	f.Entries = make([]ImageEntry, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			f.Entries = append(f.Entries, ImageEntry{Kind: ImageInvalid, Raw: string(item)})
			continue
		}
		f.Entries = append(f.Entries, NewImageEntry(s))
	}
	return nil
}

func (f ImageField) MarshalJSON() ([]byte, error) {
	if !f.Present {
		return []byte("null"), nil
	}
	out := make([]json.RawMessage, 0, len(f.Entries))
	for _, e := range f.Entries {
		if e.Kind == ImageInvalid {
			out = append(out, json.RawMessage(e.Raw))
			continue
		}
		b, err := json.Marshal(e.Raw)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return json.Marshal(out)
}

// URLs returns every resolvable URL in order, skipping unresolved entries.
func (f ImageField) URLs() []string {
	if !f.Present {
		return nil
	}
	out := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		if u, ok := ResolveEntry(e); ok {
			out = append(out, u)
		}
	}
	return out
}

// ResolveEntry turns one image entry into a clean URL. It reports false when
// nothing usable remains.
func ResolveEntry(e ImageEntry) (string, bool) {
	candidate := e.Raw
	switch e.Kind {
	case ImageInvalid:
		return "", false
	case ImageEncodedArray:
		candidate = firstEncodedURL(e.Raw)
	}
	cleaned := strings.TrimSpace(imageResidue.Replace(candidate))
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// firstEncodedURL returns the head of a JSON array of strings, or raw when
// raw is not such an array.
func firstEncodedURL(raw string) string {
	var parsed []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed) == 0 {
		return raw
	}
	var head string
	if err := json.Unmarshal(parsed[0], &head); err != nil {
		return raw
	}
	return head
}
