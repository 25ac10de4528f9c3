package xwire

import (
	"fmt"
	"net/netip"

	"github.com/omeyang/netsem/pkg/xip"
	"github.com/omeyang/netsem/pkg/xport"
	"github.com/omeyang/netsem/pkg/xsock"
)

// Record 是套接字地址及其分类的序列化形式。
// 使用 JSON/BSON/YAML 标签，可直接交给对应的编解码器。
//
// 分类字段在转换时即时计算，从不存储在核心类型上；
// 解码时分类字段被忽略并重新计算，防止持久化数据与分类规则漂移。
type Record struct {
	IP        string `json:"ip" bson:"ip" yaml:"ip"`
	Port      uint16 `json:"port" bson:"port" yaml:"port"`
	IPClass   string `json:"ip_class" bson:"ip_class" yaml:"ip_class"`
	PortClass string `json:"port_class" bson:"port_class" yaml:"port_class"`
}

// RecordOf 从套接字地址生成 Record，分类即时计算。
// 地址以规范字符串形式写入（IPv6 压缩、无前导零）。
func RecordOf(ap netip.AddrPort) Record {
	ipc, pc := xsock.Classify(ap)
	return Record{
		IP:        ap.Addr().String(),
		Port:      ap.Port(),
		IPClass:   ipc.String(),
		PortClass: pc.String(),
	}
}

// AddrPort 将 Record 还原为套接字地址。
// IP 字段重新经 [xip.Parse] 严格校验，错误原样透传。
// IPClass/PortClass 字段仅供人读与查询过滤，解码时忽略——
// 分类永远由地址位重新计算，不信任持久化的标签。
func (r Record) AddrPort() (netip.AddrPort, error) {
	addr, err := xip.Parse(r.IP)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return netip.AddrPortFrom(addr, r.Port), nil
}

// ParseIPClass 将小写标签解析回 [xip.Class]。
// 标签即 [xip.Class.String] 的输出；未知标签返回 [ErrUnknownClass]。
func ParseIPClass(s string) (xip.Class, error) {
	switch s {
	case "unspecified":
		return xip.Unspecified, nil
	case "loopback":
		return xip.Loopback, nil
	case "multicast":
		return xip.Multicast, nil
	case "private":
		return xip.Private, nil
	case "global":
		return xip.Global, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}

// ParsePortClass 将小写标签解析回 [xport.Class]。
// 标签即 [xport.Class.String] 的输出；未知标签返回 [ErrUnknownClass]。
func ParsePortClass(s string) (xport.Class, error) {
	switch s {
	case "system":
		return xport.System, nil
	case "user":
		return xport.User, nil
	case "dynamic":
		return xport.Dynamic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}
