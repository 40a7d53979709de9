package buildbot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/failman/failman/api"
)

// Client communicates with the buildbot rest api to retrieve the builder roster and the latest change per branch
//go:generate mockgen -package=buildbot -destination ./mock.go -source=client.go
type Client interface {
	GetBuilders(ctx context.Context) (builders []api.Builder, err error)
	GetLatestChange(ctx context.Context, branch string) (change *api.Change, err error)
	BaseURL() string
}

// NewClient returns a new buildbot api Client for the master at baseURL
func NewClient(baseURL string) (Client, error) {
	return &client{
		baseURL: baseURL,
		apiURL:  baseURL + "api/v2",
	}, nil
}

type client struct {
	baseURL string
	apiURL  string
}

type buildersResponse struct {
	Builders []api.Builder `json:"builders"`
}

type changesResponse struct {
	Changes []api.Change `json:"changes"`
}

func (c *client) BaseURL() string {
	return c.baseURL
}

func (c *client) GetBuilders(ctx context.Context) (builders []api.Builder, err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "GetBuilders")
	defer span.Finish()

	var envelope buildersResponse
	err = c.getJSON(span, fmt.Sprintf("%v/builders", c.apiURL), &envelope)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Retrieved %v builders from buildbot api", len(envelope.Builders))

	return envelope.Builders, nil
}

func (c *client) GetLatestChange(ctx context.Context, branch string) (change *api.Change, err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "GetLatestChange")
	defer span.Finish()
	span.SetTag("branch", branch)

	params := url.Values{}
	params.Set("branch", branch)
	params.Set("limit", "1")
	params.Set("order", "-changeid")

	var envelope changesResponse
	err = c.getJSON(span, fmt.Sprintf("%v/changes?%v", c.apiURL, params.Encode()), &envelope)
	if err != nil {
		return nil, err
	}

	// a branch without changes is not an error, it just contributes nothing to the report
	if len(envelope.Changes) == 0 {
		return nil, nil
	}

	return &envelope.Changes[0], nil
}

func (c *client) getJSON(span opentracing.Span, requestURL string, target interface{}) (err error) {

	// create client, in order to add tracing; a failed call is not retried
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 1
	client.Backoff = pester.DefaultBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 60

	request, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("Failed creating request for %v: %v", requestURL, err)
	}

	// add tracing context
	request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

	// collect additional information on setting up connections
	request, ht := nethttp.TraceRequest(span.Tracer(), request)

	// perform actual request
	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("Failed performing http request to %v: %v", requestURL, err)
	}

	defer response.Body.Close()
	ht.Finish()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Request to %v responded with status code %v", requestURL, response.StatusCode)
	}

	err = json.NewDecoder(response.Body).Decode(target)
	if err != nil {
		return fmt.Errorf("Failed decoding response from %v: %v", requestURL, err)
	}

	return nil
}
