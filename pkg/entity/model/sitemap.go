package model

import "encoding/xml"

// SitemapChangeFreq hints how often a page changes.
const (
	SitemapWeekly  = "weekly"
	SitemapMonthly = "monthly"
)

// SitemapURL is one entry of the sitemap protocol.
type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// SitemapURLSet is the root element served at /sitemap.xml.
type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapXmlns is the sitemap protocol namespace.
const SitemapXmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"
