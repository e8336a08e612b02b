// ABOUTME: Source descriptor loaded from the static or dynamic registry
// ABOUTME: A source is treated as a feed first and a crawlable page second

package domain

// Source is a single news source from the registry. Whether it is a
// syndication feed or a plain HTML page is discovered at fetch time, not
// declared here.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
