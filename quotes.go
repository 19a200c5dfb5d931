package brokerbook

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Quoter provides the latest and previous closing prices for an instrument.
//
// A quoter never fails: on network errors, unknown symbols or insufficient
// history it degrades to (0, 0), so valuation reports still render with
// zeroed figures instead of aborting. When only one closing price exists,
// previous equals current.
type Quoter interface {
	Quote(symbol string) (current, previous float64)
}

// zeroQuoter quotes everything at zero. Used when no provider is configured.
type zeroQuoter struct{}

func (zeroQuoter) Quote(string) (float64, float64) { return 0, 0 }

// quoteTimeout bounds the external fetch so a stalled provider cannot hang
// the engine.
const quoteTimeout = 10 * time.Second

// NSEQuoter fetches daily closing prices from the Yahoo Finance chart API.
// Symbols are resolved on the National Stock Exchange by appending the ".NS"
// suffix; that normalization is this collaborator's responsibility, callers
// pass the bare instrument symbol.
type NSEQuoter struct {
	base   string // endpoint base, overridable in tests
	client *http.Client
}

// NewNSEQuoter returns a quoter with a bounded timeout and a daily-expiring
// disk cache, so a report valuing many holdings of the same instrument hits
// the provider at most once per symbol and day.
func NewNSEQuoter() *NSEQuoter {
	return &NSEQuoter{
		base:   "https://query2.finance.yahoo.com",
		client: &http.Client{Timeout: quoteTimeout, Transport: &diskCache{base: http.DefaultTransport}},
	}
}

// Quote implements Quoter. A failed fetch is retried once, then degrades to
// (0, 0).
func (q *NSEQuoter) Quote(symbol string) (current, previous float64) {
	current, previous, err := q.fetch(symbol)
	if err != nil {
		current, previous, err = q.fetch(symbol)
	}
	if err != nil {
		log.Printf("no quote for %q, valuing at zero: %v", symbol, err)
		return 0, 0
	}
	return current, previous
}

/*
	{
	  "chart": {
	    "result": [
	      {
	        "meta": {...},
	        "timestamp": [...],
	        "indicators": { "quote": [ { "close": [ 3412.1, 3425.55 ] } ] }
	      }
	    ],
	    "error": null
	  }
	}
*/
func (q *NSEQuoter) fetch(symbol string) (current, previous float64, err error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", q.base, url.PathEscape(symbol+".NS"))

	var jobj any
	if err := jwget(q.client, addr, &jobj); err != nil {
		return 0, 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.chart.result[0].indicators.quote[0].close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return 0, 0, fmt.Errorf("error parsing quote for %q: %q is not a list", symbol, path)
	}

	// The API pads non-trading days with nulls, keep the real closes only.
	var closes []float64
	for _, v := range jlist {
		if f, ok := v.(float64); ok {
			closes = append(closes, f)
		}
	}
	switch len(closes) {
	case 0:
		return 0, 0, fmt.Errorf("no closing price for %q", symbol)
	case 1:
		c := round2(closes[0])
		return c, c, nil
	default:
		return round2(closes[len(closes)-1]), round2(closes[len(closes)-2]), nil
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key includes the day, so the local cache expires daily.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}
