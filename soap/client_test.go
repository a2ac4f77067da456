package soap

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wsdl2go/xmlevt"
)

// echoMessage is a minimal ToXml/FromXml implementation standing in
// for generator-emitted code.
type echoMessage struct {
	A, B string
}

func (m *echoMessage) ToXml(w *xmlevt.Writer, topLevel bool) error {
	if err := w.StartElement("echoMessage"); err != nil {
		return err
	}
	if err := w.StartElement("A"); err != nil {
		return err
	}
	if err := w.Text(m.A); err != nil {
		return err
	}
	if err := w.EndElement("A"); err != nil {
		return err
	}
	if err := w.StartElement("B"); err != nil {
		return err
	}
	if err := w.Text(m.B); err != nil {
		return err
	}
	if err := w.EndElement("B"); err != nil {
		return err
	}
	return w.EndElement("echoMessage")
}

func (m *echoMessage) FromXml(r *xmlevt.Reader) error {
	if _, err := r.ExpectStart("echoMessage"); err != nil {
		return err
	}
	if _, err := r.ExpectStart("A"); err != nil {
		return err
	}
	a, err := r.ExpectText()
	if err != nil {
		return err
	}
	if err := r.ExpectEnd(); err != nil {
		return err
	}
	if _, err := r.ExpectStart("B"); err != nil {
		return err
	}
	b, err := r.ExpectText()
	if err != nil {
		return err
	}
	if err := r.ExpectEnd(); err != nil {
		return err
	}
	m.A, m.B = a, b
	return r.ExpectEnd()
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Content-Type") != "text/xml" {
			http.Error(w, "missing content type", http.StatusBadRequest)
			return
		}
		io.Copy(w, r.Body)
	}))
}

func TestSendRoundTrip(t *testing.T) {
	s := newEchoServer(t)
	defer s.Close()

	var actionSeen string
	cli := &Client{
		URL: s.URL,
		Pre: func(r *http.Request) { actionSeen = r.Header.Get("SOAPAction") },
	}

	req := &Envelope[echoMessage, *echoMessage]{Body: echoMessage{A: "hello", B: "world"}}
	var resp Envelope[echoMessage, *echoMessage]

	err := Send(cli, "urn:calc#Echo", req, &resp)
	require.NoError(t, err)
	assert.Equal(t, "urn:calc#Echo", actionSeen)
	assert.Equal(t, "hello", resp.Body.A)
	assert.Equal(t, "world", resp.Body.B)
}

func TestSendNoActionHeaderWhenEmpty(t *testing.T) {
	s := newEchoServer(t)
	defer s.Close()

	sawHeader := false
	cli := &Client{
		URL: s.URL,
		Pre: func(r *http.Request) { sawHeader = r.Header.Get("SOAPAction") != "" },
	}

	req := &Envelope[echoMessage, *echoMessage]{Body: echoMessage{A: "x", B: "y"}}
	var resp Envelope[echoMessage, *echoMessage]
	require.NoError(t, Send(cli, "", req, &resp))
	assert.False(t, sawHeader)
}

func TestSendConnectionFailure(t *testing.T) {
	cli := &Client{URL: "http://127.0.0.1:0"}
	req := &Envelope[echoMessage, *echoMessage]{Body: echoMessage{A: "a", B: "b"}}
	var resp Envelope[echoMessage, *echoMessage]
	err := Send(cli, "", req, &resp)
	require.Error(t, err)
}

func TestSendNonOKStatus(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer s.Close()

	cli := &Client{URL: s.URL}
	req := &Envelope[echoMessage, *echoMessage]{Body: echoMessage{A: "a", B: "b"}}
	var resp Envelope[echoMessage, *echoMessage]
	err := Send(cli, "", req, &resp)
	require.Error(t, err)
}
