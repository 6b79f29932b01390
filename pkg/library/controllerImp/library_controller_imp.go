package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"studyplan/pkg/library/service"
)

type LibraryCtrl struct {
	s        service.LibraryService
	allow    map[string]bool
	maxBytes int
}

// New builds the controller; allowedDomains restricts URL ingestion
// (empty list = URL ingestion disabled).
func New(s service.LibraryService, allowedDomains []string, maxBytes int) *LibraryCtrl {
	allow := map[string]bool{}
	for _, h := range allowedDomains {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &LibraryCtrl{s: s, allow: allow, maxBytes: maxBytes}
}

type ingestReq struct {
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	Text      string `json:"text"`
	SourceURL string `json:"source_url"`
}

func (h *LibraryCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text is required"})
	}

	doc, chunks, err := h.s.UpsertDocument(strings.TrimSpace(req.Title), strings.TrimSpace(req.Tags), req.Text, req.SourceURL)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": chunks})
}

func (h *LibraryCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Tags, Title string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	txt, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if body.Title != "" {
		title = body.Title
	}

	doc, n, err := h.s.UpsertDocument(title, body.Tags, txt, body.URL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

func (h *LibraryCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "q required"})
	}
	k := 6
	if v, err := strconv.Atoi(c.QueryParam("k")); err == nil && v > 0 && v <= 50 {
		k = v
	}
	chunks, err := h.s.Search(q, k)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.DocID]; !ok {
			seen[ch.DocID] = struct{}{}
			ids = append(ids, ch.DocID)
		}
	}
	meta, _ := h.s.DocsMeta(ids)

	type outChunk struct {
		ChunkID   uint   `json:"chunk_id"`
		DocID     uint   `json:"doc_id"`
		Ord       int    `json:"ord"`
		Text      string `json:"text"`
		DocTitle  string `json:"doc_title,omitempty"`
		SourceURL string `json:"source_url,omitempty"`
	}
	out := make([]outChunk, 0, len(chunks))
	for _, ch := range chunks {
		oc := outChunk{ChunkID: ch.ChunkID, DocID: ch.DocID, Ord: ch.Ord, Text: ch.Text}
		if d, ok := meta[ch.DocID]; ok {
			oc.DocTitle = d.Title
			oc.SourceURL = d.SourceURL
		}
		out = append(out, oc)
	}
	return c.JSON(http.StatusOK, out)
}

// fetchMainText pulls the page and extracts title plus readable text from
// main/article (falling back to the whole document).
func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}

	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		txt := string(b)
		return txt, firstLine(txt), nil
	}
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	var parts []string
	sel.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), title, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i > 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
