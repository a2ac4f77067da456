// Package soap provides the SOAP HTTP client runtime generated code is
// compiled against: the ToXml/FromXml contracts, the generic Envelope
// wrapper, and Client/Send for issuing requests.
package soap

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/fiorix/wsdl2go/xmlevt"
)

// Client is a SOAP client bound to a single port's endpoint.
type Client struct {
	URL    string              // URL of the server
	Config *http.Client        // Optional HTTP client
	Pre    func(*http.Request) // Optional hook to modify outbound requests
	Debug  bool                // Optional: print the request and response
}

// NewClient returns a Client that sends requests to endpoint.
func NewClient(endpoint string) *Client {
	return &Client{URL: endpoint}
}

// Send serializes req as the body of a SOAP envelope, POSTs it to
// c.URL with Content-Type text/xml, and decodes the response into
// resp. action, when non-empty, is sent as the SOAPAction header —
// closing the simplification spec.md §9 flags, where the method name
// was never attached to the wire request.
func Send[TReq any, PReq interface {
	*TReq
	ToXml
	FromXml
}, TResp any, PResp interface {
	*TResp
	ToXml
	FromXml
}](c *Client, action string, req *Envelope[TReq, PReq], resp *Envelope[TResp, PResp]) error {
	var buf bytes.Buffer
	w := xmlevt.NewWriter(&buf)
	if err := req.ToXml(w); err != nil {
		return fmt.Errorf("soap: encode request: %w", err)
	}

	cli := c.Config
	if cli == nil {
		cli = http.DefaultClient
	}

	httpReq, err := http.NewRequest("POST", c.URL, &buf)
	if err != nil {
		return fmt.Errorf("soap: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml")
	if action != "" {
		httpReq.Header.Set("SOAPAction", action)
	}
	if c.Pre != nil {
		c.Pre(httpReq)
	}

	if c.Debug {
		if dump, err := httputil.DumpRequest(httpReq, true); err == nil {
			fmt.Println("Request start ----")
			fmt.Println(string(dump))
			fmt.Println("Request end ------")
		}
	}

	httpResp, err := cli.Do(httpReq)
	if err != nil {
		return fmt.Errorf("soap: do request: %w", err)
	}
	defer httpResp.Body.Close()

	if c.Debug {
		if dump, err := httputil.DumpResponse(httpResp, true); err == nil {
			fmt.Println("Response start ----")
			fmt.Println(string(dump))
			fmt.Println("Response end ------")
		}
	}

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 1024*1024))
		return fmt.Errorf("soap: %s: %s", httpResp.Status, body)
	}

	r := xmlevt.NewReader(httpResp.Body)
	if err := resp.FromXml(r); err != nil {
		return fmt.Errorf("soap: decode response: %w", err)
	}
	return nil
}
