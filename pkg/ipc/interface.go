/*
Package ipc serves the word frequency analyzer as a msgpack stream over stdin/stdout.

The server reads a sequence of msgpack encoded requests and answers each with
exactly one response, in order. Every message carries the client's ID.

On start the server announces itself:

	{"s": "ready"}

A top-N request and its answer:

	{"id": "req_001", "op": "top", "t": "b a b c", "n": 2}
	{"id": "req_001", "s": "ok", "ws": [{"w": "b", "f": 2}, {"w": "a", "f": 1}], "t": 41}

Other operations:

	{"id": "req_002", "op": "highest", "t": "b a b c"}
	{"id": "req_003", "op": "word", "t": "b a b c", "w": "B"}
	{"id": "req_004", "op": "health"}

Leaving out "t" (or sending nil) is an absent text and fails the same way
as in the HTTP API. Failures carry the reason, a reference and a code:

	{"id": "req_005", "s": "error", "e": "Input text is null. Null texts cannot be analyzed.", "r": "6a1c...", "c": 400}

Codes follow HTTP semantics: 400 for rejected input or an unknown op, 500
for anything unexpected. The "t" field of a response is the time spent in
microseconds.
*/
package ipc

// Operations understood by the server.
const (
	OpHighest = "highest"
	OpWord    = "word"
	OpTop     = "top"
	OpHealth  = "health"
)

// Response statuses.
const (
	StatusReady = "ready"
	StatusOK    = "ok"
	StatusError = "error"
)

// Request - a single analysis request
type Request struct {
	ID   string  `msgpack:"id"`
	Op   string  `msgpack:"op"`
	Text *string `msgpack:"t"`
	Word string  `msgpack:"w,omitempty"`
	N    int     `msgpack:"n,omitempty"`
}

// WordFrequency - minimal ranked word entry
type WordFrequency struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// Response - answer to one Request
type Response struct {
	ID        string          `msgpack:"id,omitempty"`
	Status    string          `msgpack:"s"`
	Frequency int             `msgpack:"f,omitempty"`
	Word      string          `msgpack:"w,omitempty"`
	Words     []WordFrequency `msgpack:"ws,omitempty"`
	Error     string          `msgpack:"e,omitempty"`
	Reference string          `msgpack:"r,omitempty"`
	Code      int             `msgpack:"c,omitempty"`
	TimeTaken int64           `msgpack:"t,omitempty"`
}
