package gcp

import "testing"

func TestPublicURL(t *testing.T) {
	cases := []struct {
		name string
		cfg  BucketConfig
		key  string
		want string
	}{
		{"cdn", BucketConfig{Name: "claon", CDNDomain: "cdn.claon.life"}, "/center/profile/a.png", "https://cdn.claon.life/center/profile/a.png"},
		{"emulator", BucketConfig{Name: "claon", EmulatorHost: "http://localhost:4443/"}, "center/fee/b.jpg", "http://localhost:4443/claon/center/fee/b.jpg"},
		{"gcs", BucketConfig{Name: "claon"}, "center/proof/c.pdf", "https://storage.googleapis.com/claon/center/proof/c.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PublicURL(tc.cfg, tc.key); got != tc.want {
				t.Fatalf("PublicURL: want=%q got=%q", tc.want, got)
			}
		})
	}
}

func TestContentTypeForKey(t *testing.T) {
	if got := ContentTypeForKey("x/Y.JPEG"); got != "image/jpeg" {
		t.Fatalf("jpeg: got=%q", got)
	}
	if got := ContentTypeForKey("x/y.pdf?sig=1"); got != "application/pdf" {
		t.Fatalf("pdf: got=%q", got)
	}
	if got := ContentTypeForKey("x/y.exe"); got != "" {
		t.Fatalf("unknown: got=%q", got)
	}
}
