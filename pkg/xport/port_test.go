package xport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		port Port
		want Class
	}{
		// 边界值：区间闭合且连续
		{0, System},
		{1, System},
		{1023, System},
		{1024, User},
		{8080, User},
		{49151, User},
		{49152, Dynamic},
		{65535, Dynamic},
	}
	for _, tt := range tests {
		t.Run(tt.port.String(), func(t *testing.T) {
			got := Classify(tt.port)
			assert.Equal(t, tt.want, got)
			// 确定性：重复分类结果恒等
			assert.Equal(t, got, Classify(tt.port))
		})
	}
}

// 每个可表示的端口值都恰好命中一级，无空洞无重叠。
func TestClassifyTotal(t *testing.T) {
	for n := 0; n <= 65535; n++ {
		c := Classify(Port(n))
		switch {
		case n <= 1023:
			assert.Equal(t, System, c, "port %d", n)
		case n <= 49151:
			assert.Equal(t, User, c, "port %d", n)
		default:
			assert.Equal(t, Dynamic, c, "port %d", n)
		}
	}
}

func TestIsUsable(t *testing.T) {
	assert.False(t, Port(0).IsUsable())
	assert.True(t, Port(1).IsUsable())
	assert.True(t, Port(65535).IsUsable())
}

func TestPortString(t *testing.T) {
	assert.Equal(t, "0", Port(0).String())
	assert.Equal(t, "8080", Port(8080).String())
	assert.Equal(t, "65535", Port(65535).String())
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "system", System.String())
	assert.Equal(t, "user", User.String())
	assert.Equal(t, "dynamic", Dynamic.String())
	assert.Equal(t, "invalid", Class(99).String())
}
