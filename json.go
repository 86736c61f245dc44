package ringq

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tychoish/ringq/ers"
)

// MarshalJSON produces a JSON array of the values in the queue,
// front to back. Nil and empty queues marshal as an empty array.
func (q *Queue) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}

	_ = buf.WriteByte('[')
	for e := q.Front(); e.Ok(); e = e.next {
		if e != q.root.next {
			_ = buf.WriteByte(',')
		}
		val, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		_, _ = buf.Write(val)
	}
	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON array of strings and appends the values
// to the back of the queue. Existing elements are kept. The queue is
// not modified if the input is not an array of strings.
func (q *Queue) UnmarshalJSON(in []byte) error {
	if q == nil {
		return ers.Wrap(ers.ErrInvalidInput, "unmarshal into nil queue")
	}

	var values []string
	if err := json.Unmarshal(in, &values); err != nil {
		return fmt.Errorf("decoding queue: %w: %w", ers.ErrInvalidInput, err)
	}

	for _, v := range values {
		q.InsertTail(v)
	}
	return nil
}
