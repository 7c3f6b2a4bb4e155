package services

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ScrapedJob is the best-effort extraction of a job posting page.
type ScrapedJob struct {
	CompanyName    string `json:"company_name"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

// ScraperService fetches a job posting URL and pulls out the title, company
// and description with markup heuristics. Postings vary wildly, so every
// field has a fallback and the caller is expected to let the user correct
// the result.
type ScraperService struct {
	client *http.Client
}

func NewScraperService() *ScraperService {
	return &ScraperService{client: &http.Client{Timeout: 15 * time.Second}}
}

var (
	titlePattern       = regexp.MustCompile(`(?i)title|job-title|position`)
	companyPattern     = regexp.MustCompile(`(?i)company|employer|organization`)
	descriptionPattern = regexp.MustCompile(`(?i)description|job-description|details`)
)

func (s *ScraperService) Scrape(url string) (*ScrapedJob, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	job := &ScrapedJob{
		JobTitle: firstText(doc,
			byTag("h1"),
			byTag("title"),
			byAttrPattern("class", titlePattern),
		),
		CompanyName: firstText(doc,
			byAttrPattern("class", companyPattern),
			byAttr("itemprop", "hiringOrganization"),
			byAttr("itemprop", "name"),
		),
		JobDescription: firstText(doc,
			byAttrPattern("class", descriptionPattern),
			byAttr("itemprop", "description"),
			byAttrPattern("id", descriptionPattern),
			byTag("main"),
			byTag("article"),
		),
	}

	if job.JobTitle == "" {
		job.JobTitle = "Unknown Position"
	}
	if job.CompanyName == "" {
		job.CompanyName = "Unknown Company"
	}
	if job.JobDescription == "" {
		job.JobDescription = "No description available"
	}
	return job, nil
}

type nodeMatcher func(*html.Node) bool

func byTag(tag string) nodeMatcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func byAttr(key, value string) nodeMatcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, key) == value
	}
}

func byAttrPattern(key string, pattern *regexp.Regexp) nodeMatcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v := attr(n, key)
		return v != "" && pattern.MatchString(v)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// firstText tries each matcher in order and returns the text of the first
// node that yields any.
func firstText(doc *html.Node, matchers ...nodeMatcher) string {
	for _, match := range matchers {
		if n := findNode(doc, match); n != nil {
			if text := collapseSpace(textContent(n)); text != "" {
				return text
			}
		}
	}
	return ""
}

func findNode(n *html.Node, match nodeMatcher) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	// Script and style bodies are text nodes too, but never content.
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
		sb.WriteString(" ")
	}
	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
