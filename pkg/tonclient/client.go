package tonclient

import (
	"fmt"
	"sync"
)

// Callback receives the outcome of requests made through a Client.
type Callback interface {
	OnSuccess(value string)
	OnFailure(value string)
}

// CallbackFuncs adapts two functions to Callback. Either may be nil.
type CallbackFuncs struct {
	Success func(value string)
	Failure func(value string)
}

func (f CallbackFuncs) OnSuccess(value string) {
	if f.Success != nil {
		f.Success(value)
	}
}

func (f CallbackFuncs) OnFailure(value string) {
	if f.Failure != nil {
		f.Failure(value)
	}
}

// Client is a small value holding an endpoint and an optional callback. It is
// not tied to a context; any number of contexts can be used with one Client.
type Client struct {
	EndpointURL string
	AccessKey   string
	Timeouts    Timeouts
	Callback    Callback
}

// NewClient returns a Client for endpointURL. cb may be nil.
func NewClient(endpointURL string, cb Callback) *Client {
	return &Client{EndpointURL: endpointURL, Callback: cb}
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
)

// Shared returns the process-wide Client. The first call decides its
// endpoint and callback; later arguments are ignored. Passing a *Client
// explicitly is preferred over this accessor.
func Shared(endpointURL string, cb Callback) *Client {
	sharedOnce.Do(func() {
		sharedClient = NewClient(endpointURL, cb)
	})
	return sharedClient
}

// Config returns the network configuration the client represents.
func (c *Client) Config() ClientConfig {
	return ClientConfig{EndpointURL: c.EndpointURL, AccessKey: c.AccessKey, Timeouts: c.Timeouts}
}

// Setup sends the setup method built from the client's endpoint and timeouts
// on ctx. A successful setup has no value.
func (c *Client) Setup(ctx *Context) error {
	params, err := c.Config().SetupParams()
	if err != nil {
		return err
	}
	p, err := c.Invoke(ctx, MethodSetup, params)
	if err != nil {
		return err
	}
	if p.Failed() {
		return fmt.Errorf("setup rejected: %s", p.Error)
	}
	return nil
}

// Invoke runs method on ctx and notifies the callback: OnFailure with the
// error JSON, or OnSuccess with the normalized result. Methods whose result
// normalizes to no value do not notify OnSuccess.
func (c *Client) Invoke(ctx *Context, method, paramsJSON string) (Payload, error) {
	p, err := ctx.RequestPayload(method, paramsJSON)
	if err != nil {
		return Payload{}, err
	}
	if c.Callback == nil {
		return p, nil
	}
	if p.Failed() {
		c.Callback.OnFailure(p.Error)
		return p, nil
	}
	if v, ok := Transform(method, p.Result); ok {
		c.Callback.OnSuccess(v)
	}
	return p, nil
}

// Builder assembles a Client fluently.
type Builder struct {
	client Client
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetEndpointURL(url string) *Builder {
	b.client.EndpointURL = url
	return b
}

func (b *Builder) SetAccessKey(key string) *Builder {
	b.client.AccessKey = key
	return b
}

func (b *Builder) SetTimeouts(t Timeouts) *Builder {
	b.client.Timeouts = t
	return b
}

func (b *Builder) SetCallback(cb Callback) *Builder {
	b.client.Callback = cb
	return b
}

// FromConfig copies endpoint, access key and timeouts from cfg.
func (b *Builder) FromConfig(cfg ClientConfig) *Builder {
	b.client.EndpointURL = cfg.EndpointURL
	b.client.AccessKey = cfg.AccessKey
	b.client.Timeouts = cfg.Timeouts
	return b
}

// Build returns a new Client; the builder can keep being used.
func (b *Builder) Build() *Client {
	c := b.client
	return &c
}
