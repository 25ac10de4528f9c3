package xip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixesOf(t *testing.T) {
	tests := []struct {
		class Class
		count int
	}{
		{Unspecified, 2},
		{Loopback, 2},
		{Multicast, 2},
		{Private, 6},
		{Global, 0}, // 兜底分类没有定义前缀
	}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			prefixes := PrefixesOf(tt.class)
			assert.Len(t, prefixes, tt.count)
			for _, p := range prefixes {
				assert.True(t, p.IsValid())
			}
		})
	}
}

func TestPrefixesOfReturnsCopy(t *testing.T) {
	a := PrefixesOf(Private)
	require.NotEmpty(t, a)
	a[0] = netip.MustParsePrefix("1.2.3.0/24")
	b := PrefixesOf(Private)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.0/8"), b[0])
}

func TestRangesOf(t *testing.T) {
	ranges := RangesOf(Loopback)
	require.Len(t, ranges, 2)
	assert.Equal(t, "127.0.0.0", ranges[0].From().String())
	assert.Equal(t, "127.255.255.255", ranges[0].To().String())
	assert.Equal(t, "::1", ranges[1].From().String())
	assert.Equal(t, "::1", ranges[1].To().String())

	assert.Nil(t, RangesOf(Global))
}

func TestSetOf(t *testing.T) {
	set, err := SetOf(Private)
	require.NoError(t, err)

	assert.True(t, set.Contains(netip.MustParseAddr("10.1.2.3")))
	assert.True(t, set.Contains(netip.MustParseAddr("172.16.0.1")))
	assert.True(t, set.Contains(netip.MustParseAddr("192.168.1.1")))
	assert.True(t, set.Contains(netip.MustParseAddr("169.254.0.1")))
	assert.True(t, set.Contains(netip.MustParseAddr("fd00::1")))
	assert.True(t, set.Contains(netip.MustParseAddr("fe80::1")))
	assert.False(t, set.Contains(netip.MustParseAddr("8.8.8.8")))
	assert.False(t, set.Contains(netip.MustParseAddr("2001:db8::1")))

	empty, err := SetOf(Global)
	require.NoError(t, err)
	assert.Empty(t, empty.Ranges())
}
