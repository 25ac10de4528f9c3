package xport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Port
	}{
		{"0", 0},
		{"1", 1},
		{"80", 80},
		{"1023", 1023},
		{"1024", 1024},
		{"49151", 49151},
		{"49152", 49152},
		{"65535", 65535},
		// 前导零：接受非规范形式
		{"0080", 80},
		{"00000", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmpty},

		// 语法错误
		{"negative", "-1", ErrMalformed},
		{"plus sign", "+80", ErrMalformed},
		{"alpha", "abc", ErrMalformed},
		{"mixed", "80a", ErrMalformed},
		{"space", " 80", ErrMalformed},
		{"trailing space", "80 ", ErrMalformed},
		{"hex", "0x50", ErrMalformed},
		{"decimal point", "80.0", ErrMalformed},

		// 越界
		{"65536", "65536", ErrOutOfRange},
		{"100000", "100000", ErrOutOfRange},
		{"exceeds uint64", "99999999999999999999999999", ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Port(0), p)
		})
	}
}

func TestParseOversizedInput(t *testing.T) {
	// 病态超长输入：有界扫描，不 panic 不阻塞
	_, err := Parse(strings.Repeat("9", 1<<16))
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Parse(strings.Repeat("a", 1<<16))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFromInt(t *testing.T) {
	p, err := FromInt(8080)
	require.NoError(t, err)
	assert.Equal(t, Port(8080), p)

	p, err = FromInt(0)
	require.NoError(t, err)
	assert.Equal(t, Port(0), p)

	// 越界：返回错误而非截断/回绕
	_, err = FromInt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = FromInt(65536)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Port(443), MustParse("443"))
	assert.Panics(t, func() { MustParse("65536") })
}
