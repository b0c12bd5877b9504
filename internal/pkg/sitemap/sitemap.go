// Package sitemap renders the XML sitemap served at /api/sitemap.
package sitemap

import "encoding/xml"

// Page is a single sitemap entry
type Page struct {
	URL          string
	LastModified string
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Render produces a complete sitemap XML document for the given pages.
func Render(pages []Page) ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(pages)),
	}
	for _, p := range pages {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        p.URL,
			LastMod:    p.LastModified,
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}

	body, err := xml.Marshal(set)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
