package xip

import (
	"net/netip"

	"go4.org/netipx"
)

// 各分类的定义前缀。Global 是其余分类的补集，没有自己的定义前缀。
// 顺序约定：IPv4 前缀在前，IPv6 前缀在后。
var (
	unspecifiedPrefixes = []netip.Prefix{
		netip.MustParsePrefix("0.0.0.0/32"),
		netip.MustParsePrefix("::/128"),
	}
	loopbackPrefixes = []netip.Prefix{
		netip.MustParsePrefix("127.0.0.0/8"),
		netip.MustParsePrefix("::1/128"),
	}
	multicastPrefixes = []netip.Prefix{
		netip.MustParsePrefix("224.0.0.0/4"),
		netip.MustParsePrefix("ff00::/8"),
	}
	privatePrefixes = []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("192.168.0.0/16"),
		netip.MustParsePrefix("169.254.0.0/16"),
		netip.MustParsePrefix("fc00::/7"),
		netip.MustParsePrefix("fe80::/10"),
	}
)

// PrefixesOf 返回分类 c 的定义前缀。
// 返回副本，修改不影响内部表。Global（及未知值）返回 nil。
//
// 注意：定义前缀描述的是分类的判定区间，不含 [Classify] 的优先级短路。
// 例如 0.0.0.0 同时落在 Unspecified 的前缀内，分类时 Unspecified 优先。
func PrefixesOf(c Class) []netip.Prefix {
	var src []netip.Prefix
	switch c {
	case Unspecified:
		src = unspecifiedPrefixes
	case Loopback:
		src = loopbackPrefixes
	case Multicast:
		src = multicastPrefixes
	case Private:
		src = privatePrefixes
	default:
		return nil
	}
	out := make([]netip.Prefix, len(src))
	copy(out, src)
	return out
}

// RangesOf 返回分类 c 的定义区间，与 [PrefixesOf] 一一对应。
// 区间形式便于与 [netipx.IPRange] / [*netipx.IPSet] 的集合运算组合。
// Global（及未知值）返回 nil。
func RangesOf(c Class) []netipx.IPRange {
	prefixes := PrefixesOf(c)
	if prefixes == nil {
		return nil
	}
	out := make([]netipx.IPRange, len(prefixes))
	for i, p := range prefixes {
		out[i] = netipx.RangeOfPrefix(p)
	}
	return out
}

// SetOf 将分类 c 的定义前缀合并为 [*netipx.IPSet]。
// Global 没有定义前缀，返回空集合。
func SetOf(c Class) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, p := range PrefixesOf(c) {
		b.AddPrefix(p)
	}
	return b.IPSet()
}
