package export

import "testing"

func TestNormalizeFeedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unchanged plain feed",
			in:   "https://example.com/feed.xml",
			want: "https://example.com/feed.xml",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  https://example.com/feed \n",
			want: "https://example.com/feed",
		},
		{
			name: "trailing slash stripped",
			in:   "https://example.com/feed/",
			want: "https://example.com/feed",
		},
		{
			name: "trailing question mark stripped",
			in:   "https://example.com/feed?",
			want: "https://example.com/feed",
		},
		{
			name: "trailing ampersand stripped",
			in:   "https://example.com/feed?page=1&",
			want: "https://example.com/feed?page=1",
		},
		{
			name: "bearblog feed untouched",
			in:   "https://someone.bearblog.dev/feed",
			want: "https://someone.bearblog.dev/feed",
		},
		{
			name: "bearblog trailing slash",
			in:   "https://someone.bearblog.dev/feed/",
			want: "https://someone.bearblog.dev/feed",
		},
		{
			name: "bearblog rss type query",
			in:   "https://someone.bearblog.dev/feed/?type=rss",
			want: "https://someone.bearblog.dev/feed",
		},
		{
			name: "bearblog rss path rewritten to feed",
			in:   "https://someone.bearblog.dev/rss/",
			want: "https://someone.bearblog.dev/feed",
		},
		{
			name: "non-bearblog rss type query",
			in:   "https://blog.example.com/feed/?type=rss",
			want: "https://blog.example.com/feed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFeedURL(tt.in); got != tt.want {
				t.Errorf("NormalizeFeedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
