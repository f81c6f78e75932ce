package handler

import (
	"bytes"
	"sync"
)

// Unlock views and error bodies are a few hundred bytes
const (
	jsonBufferSize    = 512
	jsonBufferMaxKeep = 64 << 10
)

var jsonBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, jsonBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return jsonBuffers.Get().(*bytes.Buffer)
}

// putBuffer recycles buf unless an unusual payload grew it past jsonBufferMaxKeep
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > jsonBufferMaxKeep {
		return
	}
	buf.Reset()
	jsonBuffers.Put(buf)
}
