package listing

import (
	"testing"
	"time"
)

func ptr(f float64) *float64 { return &f }

func TestNormalize(t *testing.T) {
	in := []Item{
		{Title: "A", Link: "https://a.co/1", PriceNum: ptr(0)},
		{Title: "B", Link: "https://b.co/2", PriceNum: ptr(12.5)},
		{Title: "C", Link: "https://c.co/3"},
	}
	got := Normalize(in)

	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].PriceNum != nil {
		t.Errorf("zero price_num should normalize to absent, got %v", *got[0].PriceNum)
	}
	if got[1].PriceNum == nil || *got[1].PriceNum != 12.5 {
		t.Errorf("price_num 12.5 should be kept, got %v", got[1].PriceNum)
	}
	if got[2].PriceNum != nil {
		t.Error("missing price_num should stay absent")
	}
	for i, title := range []string{"A", "B", "C"} {
		if got[i].Title != title {
			t.Errorf("order changed: position %d = %q, want %q", i, got[i].Title, title)
		}
	}
	if in[0].PriceNum == nil {
		t.Error("Normalize must not modify its input")
	}
}

func TestPublishedTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-06-01T10:30:00Z", time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-06-01 10:30:00+00:00", time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-06-01T10:30:00", time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"Mon, 02 Jan 2006 15:04:05 +0000", time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"", epoch},
		{"not a date", epoch},
	}
	for _, tt := range tests {
		got := Item{Published: tt.input}.PublishedTime()
		if !got.Equal(tt.want) {
			t.Errorf("PublishedTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHasPublished(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-01", true},
		{"1970-01-01T00:00:00Z", true},
		{"", false},
		{"soon", false},
	}
	for _, tt := range tests {
		if got := (Item{Published: tt.input}).HasPublished(); got != tt.want {
			t.Errorf("HasPublished(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHostOf(t *testing.T) {
	tests := []struct {
		link string
		want string
		ok   bool
	}{
		{"https://www.amazon.fr/dp/123", "amazon.fr", true},
		{"https://WWW.AMAZON.FR/dp/456", "amazon.fr", true},
		{"https://Shop.Example.com/x", "shop.example.com", true},
		{"https://shop.example.com/x", "shop.example.com", true},
		{"http://a.co:8080/1", "a.co:8080", true},
		{"not a url", "", false},
		{"/relative/path", "", false},
		{"", "", false},
		{"http://[::1", "", false},
	}
	for _, tt := range tests {
		got, ok := HostOf(tt.link)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HostOf(%q) = (%q, %v), want (%q, %v)", tt.link, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPriceLabel(t *testing.T) {
	tests := []struct {
		it   Item
		want string
	}{
		{Item{Price: "49,99", Currency: "EUR"}, "49,99 EUR"},
		{Item{Price: "10€"}, "10€"},
		{Item{Currency: "EUR"}, ""},
	}
	for _, tt := range tests {
		if got := tt.it.PriceLabel(); got != tt.want {
			t.Errorf("PriceLabel(%+v) = %q, want %q", tt.it, got, tt.want)
		}
	}
}
