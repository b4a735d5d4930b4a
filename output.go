// 输出模块

package response

import (
	"bytes"
	"net/http"
)

// Sink is the output side of one response: it buffers headers and
// body, and writes them to the transport on Flush.
type Sink interface {
	SetContentType(mime string)
	SetStatusHeader(code int, text string)
	SetOutputBody(body string)
	GetOutputBody() string
	Flush() error
}

// Output is a Sink over http.ResponseWriter.
// Content type, status and body are buffered until Flush, so a
// builder can overwrite any of them before the response goes out.
type Output struct {
	ResponseWriter http.ResponseWriter

	contentType string
	statusCode  int
	statusText  string
	buf         bytes.Buffer
}

// NewOutput return an output bound to the specified response writer.
func NewOutput(w http.ResponseWriter) *Output {
	return &Output{ResponseWriter: w}
}

// SetContentType set the buffered Content-Type header value.
func (o *Output) SetContentType(mime string) {
	o.contentType = mime
}

// SetStatusHeader set the buffered status code and reason phrase.
// The phrase is kept for logging only: net/http always sends the
// standard phrase of the code on the wire.
func (o *Output) SetStatusHeader(code int, text string) {
	o.statusCode = code
	o.statusText = text
}

// GetStatusHeader return the buffered status code and reason phrase.
func (o *Output) GetStatusHeader() (int, string) {
	return o.statusCode, o.statusText
}

// SetOutputBody replace the buffered body.
func (o *Output) SetOutputBody(body string) {
	o.buf.Reset()
	o.buf.WriteString(body)
}

// GetOutputBody return the currently buffered body.
func (o *Output) GetOutputBody() string {
	return o.buf.String()
}

// Write append data to the buffered body.
func (o *Output) Write(data []byte) (int, error) {
	return o.buf.Write(data)
}

// SetHeader set a header directly on the underlying response writer.
func (o *Output) SetHeader(key, value string) {
	o.ResponseWriter.Header().Set(key, value)
}

// Flush write buffered headers, status and body to the transport.
func (o *Output) Flush() error {
	if o.contentType != "" {
		o.ResponseWriter.Header().Set("Content-Type", o.contentType)
	}
	if o.statusCode != 0 {
		o.ResponseWriter.WriteHeader(o.statusCode)
	}
	_, err := o.ResponseWriter.Write(o.buf.Bytes())
	return err
}
