package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolveEntry(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain", raw: "https://x/1.jpg", want: "https://x/1.jpg", wantOK: true},
		{name: "double encoded", raw: `["https://x/1.jpg"]`, want: "https://x/1.jpg", wantOK: true},
		{name: "encoded takes first element", raw: `["https://x/1.jpg","https://x/2.jpg"]`, want: "https://x/1.jpg", wantOK: true},
		{name: "malformed falls back to cleaned original", raw: `["https://x/1.jpg"`, want: "https://x/1.jpg", wantOK: true},
		{name: "stray quotes and backslashes", raw: `https://x/1.jpg\"]`, want: "https://x/1.jpg", wantOK: true},
		{name: "empty array", raw: `[]`, wantOK: false},
		{name: "nested non-string head", raw: `[["https://x/1.jpg"]]`, want: "https://x/1.jpg", wantOK: true},
		{name: "empty string", raw: "", wantOK: false},
		{name: "only residue", raw: `"\"`, wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveEntry(NewImageEntry(tc.raw))
			if ok != tc.wantOK {
				t.Fatalf("ResolveEntry(%q) ok = %v, want %v", tc.raw, ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("ResolveEntry(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNewImageEntry_DetectsEncodedArrays(t *testing.T) {
	if got := NewImageEntry(`["a"]`).Kind; got != ImageEncodedArray {
		t.Fatalf("expected encoded array kind, got %v", got)
	}
	if got := NewImageEntry(`[broken`).Kind; got != ImageEncodedArray {
		t.Fatalf("expected encoded array kind for any [ prefix, got %v", got)
	}
	if got := NewImageEntry("https://x/1.jpg").Kind; got != ImagePlain {
		t.Fatalf("expected plain kind, got %v", got)
	}
}

func TestImageField_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name        string
		payload     string
		wantPresent bool
		wantURLs    []string
	}{
		{name: "missing", payload: `{}`, wantPresent: false},
		{name: "null", payload: `{"images":null}`, wantPresent: false},
		{name: "not a list", payload: `{"images":"https://x/1.jpg"}`, wantPresent: false},
		{name: "empty list", payload: `{"images":[]}`, wantPresent: true},
		{name: "plain list", payload: `{"images":["https://x/1.jpg","https://x/2.jpg"]}`, wantPresent: true, wantURLs: []string{"https://x/1.jpg", "https://x/2.jpg"}},
		{name: "non-string entries skipped", payload: `{"images":[42,null,{"u":1},"https://x/3.jpg"]}`, wantPresent: true, wantURLs: []string{"https://x/3.jpg"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Product
			if err := json.Unmarshal([]byte(tc.payload), &p); err != nil {
				t.Fatalf("unmarshal returned error: %v", err)
			}
			if p.Images.Present != tc.wantPresent {
				t.Fatalf("Present = %v, want %v", p.Images.Present, tc.wantPresent)
			}
			if diff := cmp.Diff(tc.wantURLs, p.Images.URLs(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("unexpected URLs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProduct_DisplayImages(t *testing.T) {
	missing := Product{}
	urls, placeholder := missing.DisplayImages()
	if !placeholder || len(urls) != 1 || urls[0] != PlaceholderImageURL {
		t.Fatalf("expected exactly one placeholder, got %v (placeholder=%v)", urls, placeholder)
	}

	empty := Product{Images: NewImageField()}
	urls, placeholder = empty.DisplayImages()
	if !placeholder || len(urls) != 1 {
		t.Fatalf("expected exactly one placeholder for empty list, got %v", urls)
	}

	unusable := Product{Images: NewImageField("[]", `""`)}
	urls, placeholder = unusable.DisplayImages()
	if !placeholder || len(urls) != 1 {
		t.Fatalf("expected exactly one placeholder for unusable entries, got %v", urls)
	}

	gallery := Product{Images: NewImageField("https://x/1.jpg", `["https://x/2.jpg"]`)}
	urls, placeholder = gallery.DisplayImages()
	if placeholder {
		t.Fatal("did not expect placeholder")
	}
	if diff := cmp.Diff([]string{"https://x/1.jpg", "https://x/2.jpg"}, urls); diff != "" {
		t.Fatalf("unexpected gallery (-want +got):\n%s", diff)
	}
}

func TestImageField_MarshalRoundTripKeepsEncodedEntries(t *testing.T) {
	field := NewImageField(`["https://x/1.jpg"]`)
	b, err := json.Marshal(field)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	var back ImageField
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if len(back.Entries) != 1 || back.Entries[0].Kind != ImageEncodedArray {
		t.Fatalf("expected encoded entry to survive, got %+v", back.Entries)
	}
}
