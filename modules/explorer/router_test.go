package explorer_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutendex/explorer/modules/explorer"
	"github.com/gutendex/explorer/pkg/gate"
	"github.com/gutendex/explorer/pkg/resultpanel"
)

const (
	chrome70 = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.77 Safari/537.36"
	chrome49 = "Mozilla/5.0 (Windows NT 6.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/49.0.2623.112 Safari/537.36"
	ie11     = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
)

func getPage(t *testing.T, h http.Handler, path, ua string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("User-Agent", ua)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestPage_Admitted(t *testing.T) {
	t.Parallel()

	r := explorer.Router(explorer.RouterOptions{})
	for _, path := range []string{"/", "/explorer"} {
		rec, doc := getPage(t, r, path, chrome70)
		assert.Equal(t, http.StatusOK, rec.Code)

		children := doc.Find("#" + explorer.ContainerID).Children()
		require.Equal(t, 2, children.Length(), path)
		assert.Equal(t, 1, children.Eq(0).Children().Filter("pre#"+explorer.ResultsID).Length(), "results region comes first")
		assert.Equal(t, 1, children.Eq(1).Children().Filter("form").Length(), "form comes second")
		assert.Equal(t, 1, children.Eq(1).Find("input#"+explorer.URLInputID).Length())

		var scripts []string
		children.Each(func(_ int, s *goquery.Selection) {
			scripts = append(scripts, s.AttrOr("data-module", ""))
		})
		assert.Equal(t, []string{
			"/static/scripts/api-explorer/get-results.js",
			"/static/scripts/api-explorer/index.js",
		}, scripts)

		src, ok := doc.Find(`script[type="module"]`).Attr("src")
		assert.True(t, ok)
		assert.Equal(t, explorer.DefaultDatastarScript, src)
		assert.Zero(t, doc.Find("p.lead").Length())
		assert.Equal(t, "Gutendex API explorer", doc.Find("title").Text())
	}
}

func TestPage_ScriptPrefix(t *testing.T) {
	t.Parallel()

	r := explorer.Router(explorer.RouterOptions{Config: explorer.Config{ScriptPrefix: "/assets/js/"}})
	_, doc := getPage(t, r, "/", chrome70)

	var scripts []string
	doc.Find("#" + explorer.ContainerID + " > [data-module]").Each(func(_ int, s *goquery.Selection) {
		scripts = append(scripts, s.AttrOr("data-module", ""))
	})
	assert.Equal(t, []string{"/assets/js/api-explorer/get-results.js", "/assets/js/api-explorer/index.js"}, scripts)
}

func TestPage_Rejected(t *testing.T) {
	t.Parallel()

	r := explorer.Router(explorer.RouterOptions{Config: explorer.Config{Title: "Books"}})
	for _, ua := range []string{chrome49, ie11, "", "curl/8.4.0"} {
		rec, doc := getPage(t, r, "/", ua)
		assert.Equal(t, http.StatusOK, rec.Code)

		container := doc.Find("#" + explorer.ContainerID)
		notice := container.Find("p.lead.m-0.text-center")
		require.Equal(t, 1, notice.Length(), "ua %q", ua)
		assert.Equal(t, gate.FallbackNotice, notice.Text())
		assert.Equal(t, 1, container.Children().Length())
		assert.Zero(t, doc.Find("#"+explorer.URLInputID).Length())
		assert.Zero(t, doc.Find("script").Length())
	}
}

func resultsRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	q := url.Values{"datastar": {`{"url":"` + target + `"}`}}
	req := httptest.NewRequest(http.MethodGet, explorer.ResultsPath+"?"+q.Encode(), nil)
	req.Header.Set("Accept", "text/event-stream")
	return req
}

func TestResults_JSON(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"a":1}`))
	}))
	defer api.Close()

	r := explorer.Router(explorer.RouterOptions{
		Panel: resultpanel.New(resultpanel.WithAllowedHosts("127.0.0.1")),
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, resultsRequest(t, api.URL))

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: datastar-patch-elements"))
	assert.Contains(t, body, "data: selector #"+explorer.ResultsID)

	loading := strings.Index(body, resultpanel.LoadingText)
	result := strings.Index(body, "&#34;a&#34;: 1")
	require.GreaterOrEqual(t, loading, 0)
	assert.Greater(t, result, loading)
	assert.NotContains(t, body, resultpanel.ErrorText)
}

func TestResults_DefaultRefusesInternalHosts(t *testing.T) {
	t.Parallel()

	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"secret":"internal-admin-token"}`))
	}))
	defer internal.Close()

	rec := httptest.NewRecorder()
	explorer.Router(explorer.RouterOptions{}).ServeHTTP(rec, resultsRequest(t, internal.URL))

	body := rec.Body.String()
	assert.Contains(t, body, resultpanel.ErrorText)
	assert.NotContains(t, body, "internal-admin-token")
}

func TestResults_RelativeURL(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))
	defer api.Close()

	r := explorer.Router(explorer.RouterOptions{
		Panel: resultpanel.New(resultpanel.WithAllowedHosts("127.0.0.1"), resultpanel.WithBaseURL(api.URL)),
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, resultsRequest(t, "/books/"))

	assert.Contains(t, rec.Body.String(), "&#34;path&#34;: &#34;/books/&#34;")
}

func TestResults_Errors(t *testing.T) {
	t.Parallel()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	r := explorer.Router(explorer.RouterOptions{
		Panel: resultpanel.New(resultpanel.WithAllowedHosts("gutendex.com", "127.0.0.1")),
	})

	for _, target := range []string{closedURL, "", "not a url", "https://example.com/books"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, resultsRequest(t, target))

		body := rec.Body.String()
		loading := strings.Index(body, resultpanel.LoadingText)
		failed := strings.Index(body, resultpanel.ErrorText)
		require.GreaterOrEqual(t, loading, 0, "target %q", target)
		assert.Greater(t, failed, loading, "target %q", target)
	}
}

func TestResults_BadSignals(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, explorer.ResultsPath+"?datastar=%7B%22url%22%3A", nil)
	req.Header.Set("Accept", "text/event-stream")
	rec := httptest.NewRecorder()
	explorer.Router(explorer.RouterOptions{}).ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, resultpanel.ErrorText)
	assert.NotContains(t, body, resultpanel.LoadingText)
}

func TestResults_RequiresDatastar(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	explorer.Router(explorer.RouterOptions{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, explorer.ResultsPath, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	explorer.Router(explorer.RouterOptions{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestConfig_Modules(t *testing.T) {
	t.Parallel()

	mods := explorer.Config{ScriptPrefix: "/assets/js/"}.Modules()
	require.Len(t, mods, 2)
	assert.Equal(t, "/assets/js/api-explorer/get-results.js", mods[0].Path())
	assert.Equal(t, "/assets/js/api-explorer/index.js", mods[1].Path())

	assert.Equal(t, gate.DefaultModules(), explorer.Config{}.Modules())
}
