package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []byte
	}{
		{name: "nil", in: nil, want: nil},
		{name: "string", in: "abc", want: []byte("abc")},
		{name: "bytes passthrough", in: []byte{0x00, 0xff}, want: []byte{0x00, 0xff}},
		{name: "bool", in: true, want: []byte("true")},
		{name: "int", in: 42, want: []byte("42")},
		{name: "int64", in: int64(-7), want: []byte("-7")},
		{name: "float", in: 1.5, want: []byte("1.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeValue(tt.in))
		})
	}
}
