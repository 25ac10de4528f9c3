package xip

import "net/netip"

// Classify 返回 addr 的语义分类。
//
// 纯函数：相同输入总是产生相同分类，分类永不失败，结果也不会被存储。
// 判定按优先级短路：Unspecified → Loopback → Multicast → Private → Global，
// 更特殊的分类优先。顺序保证每个地址恰好命中一条规则：
// Unspecified 与 Loopback 先于 Private/Multicast 判定，
// 避免全零地址等位模式落入更宽的区间。
//
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）按其内嵌的 IPv4 地址分类。
// 无效地址（零值 netip.Addr）返回 Unspecified；[Parse] 不会产生无效地址，
// 此分支仅在调用方手工构造零值时触达。
func Classify(addr netip.Addr) Class {
	if !addr.IsValid() {
		return Unspecified
	}
	addr = addr.Unmap()
	switch {
	case addr.IsUnspecified():
		return Unspecified
	case addr.IsLoopback():
		return Loopback
	case addr.IsMulticast():
		return Multicast
	case isPrivate(addr):
		return Private
	default:
		return Global
	}
}

// isPrivate 报告 addr 是否落入 Private 分类的定义区间。
// 等价于对 [PrefixesOf](Private) 的逐一 Contains 判断；
// 这里用 netip 的位检查实现，一致性由测试保证。
func isPrivate(addr netip.Addr) bool {
	return addr.IsPrivate() || addr.IsLinkLocalUnicast()
}

// 设计决策: 以下包级谓词是对 netip.Addr 同名方法的薄包装，添加了
// IsValid 前置检查，并与 [Classify] 的分类定义保持一致
// （IsPrivate 包含链路本地，与 [netip.Addr.IsPrivate] 不同）。
// 保留它们是为了让调用方从单一包导入所有判定函数，
// 无需混用 addr.IsXxx() 和 xip.IsYyy()。

// IsUnspecified 报告 addr 是否为未指定地址（0.0.0.0 或 ::）。
// 无效地址返回 false。
func IsUnspecified(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsUnspecified()
}

// IsLoopback 报告 addr 是否为环回地址（127.0.0.0/8 或 ::1）。
// 无效地址返回 false。
func IsLoopback(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLoopback()
}

// IsMulticast 报告 addr 是否为多播地址（224.0.0.0/4 或 ff00::/8）。
// 无效地址返回 false。
func IsMulticast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsMulticast()
}

// IsPrivate 报告 addr 是否属于 Private 分类。
//
// 注意：与 [netip.Addr.IsPrivate] 不同，本函数把链路本地地址
// （169.254.0.0/16、fe80::/10）也计入私网——两者同样不可全球路由，
// 分类上归入同一类。判定不含 Unspecified/Loopback/Multicast 的
// 优先级短路，如需互斥分类请使用 [Classify]。
// 无效地址返回 false。
func IsPrivate(addr netip.Addr) bool {
	return addr.IsValid() && isPrivate(addr.Unmap())
}

// IsGlobal 报告 addr 是否分类为 Global。
// 这是 [Classify] 的兜底分类：有效且不属于其余四类。
func IsGlobal(addr netip.Addr) bool {
	return addr.IsValid() && Classify(addr) == Global
}

// 以下谓词覆盖不构成独立分类的特殊区间。
// 它们在 [Classify] 中都落入 Global（或 Private），按需单独判断。

// IsBroadcast 报告 addr 是否为 IPv4 有限广播地址 255.255.255.255。
// 仅本地链路广播，不可被路由器转发。IPv6 没有广播地址，返回 false。
func IsBroadcast(addr netip.Addr) bool {
	if !addr.Is4() && !addr.Is4In6() {
		return false
	}
	return ipv4ToUint32(addr) == 0xFFFFFFFF
}

// IsDocumentation 报告 addr 是否为文档专用地址。
// 文档专用地址用于文档和示例，不应出现在实际网络中：
//   - IPv4: 192.0.2.0/24 (TEST-NET-1), 198.51.100.0/24 (TEST-NET-2), 203.0.113.0/24 (TEST-NET-3)
//   - IPv6: 2001:db8::/32
//
// 无效地址返回 false。
func IsDocumentation(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		v := ipv4ToUint32(addr)
		return inRange(v, 0xC0000200, 0xC00002FF) ||
			inRange(v, 0xC6336400, 0xC63364FF) ||
			inRange(v, 0xCB007100, 0xCB0071FF)
	}
	b := addr.As16()
	return [4]byte{b[0], b[1], b[2], b[3]} == [4]byte{0x20, 0x01, 0x0d, 0xb8}
}

// IsSharedAddress 报告 addr 是否为共享地址空间 100.64.0.0/10。
// 用于运营商级 NAT (CGNAT)，RFC 6598 定义。
// 仅适用于 IPv4，无效地址或 IPv6 地址返回 false。
func IsSharedAddress(addr netip.Addr) bool {
	if !addr.Is4() && !addr.Is4In6() {
		return false
	}
	v := ipv4ToUint32(addr)
	return inRange(v, 0x64400000, 0x647FFFFF)
}

// IsBenchmark 报告 addr 是否为基准测试地址。
//   - IPv4: 198.18.0.0/15 (RFC 2544)
//   - IPv6: 2001:2::/48 (RFC 5180)
//
// 无效地址返回 false。
func IsBenchmark(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() || addr.Is4In6() {
		v := ipv4ToUint32(addr)
		return inRange(v, 0xC6120000, 0xC613FFFF)
	}
	b := addr.As16()
	return [6]byte{b[0], b[1], b[2], b[3], b[4], b[5]} == [6]byte{0x20, 0x01, 0x00, 0x02, 0x00, 0x00}
}

// inRange 检查 v 是否在 [lo, hi] 范围内。
func inRange(v, lo, hi uint32) bool {
	return v >= lo && v <= hi
}
