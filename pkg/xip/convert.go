package xip

import (
	"encoding/binary"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// IPv4-mapped IPv6 地址先解映射。非 IPv4 地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	return ipv4ToUint32(addr), true
}

// ipv4ToUint32 将 IPv4 地址转换为 uint32。
// 调用前必须确保 addr.Is4() || addr.Is4In6() 为 true。
func ipv4ToUint32(addr netip.Addr) uint32 {
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:])
}

// MapToIPv6 将 IPv4 地址转换为 IPv4-mapped IPv6 地址。
// 例如：192.168.1.1 → ::ffff:192.168.1.1
// 已是 IPv6 的地址原样返回，无效地址返回零值。
func MapToIPv6(addr netip.Addr) netip.Addr {
	if !addr.IsValid() {
		return netip.Addr{}
	}
	if addr.Is4() {
		return netip.AddrFrom16(addr.As16())
	}
	return addr
}

// UnmapToIPv4 将 IPv4-mapped IPv6 地址转换为纯 IPv4 地址。
// 例如：::ffff:192.168.1.1 → 192.168.1.1
// 纯 IPv4 与非映射的纯 IPv6 原样返回，无效地址返回零值。
func UnmapToIPv4(addr netip.Addr) netip.Addr {
	if !addr.IsValid() {
		return netip.Addr{}
	}
	if addr.Is4In6() {
		return addr.Unmap()
	}
	return addr
}
