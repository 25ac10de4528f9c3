package xprobe

import (
	"context"
	"net/netip"
)

// Outcome 表示一次 OS 级探测的三态结论。
type Outcome uint8

const (
	// Available 表示地址可绑定/可连接。
	Available Outcome = iota
	// Unavailable 表示地址不可用（端口被占用、连接被拒绝等）。
	Unavailable
	// OsError 表示探测本身因操作系统错误未能得出结论。
	OsError
)

// String 返回结论的小写标签。
// 未知值返回 "invalid"。
func (o Outcome) String() string {
	switch o {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	case OsError:
		return "os-error"
	default:
		return "invalid"
	}
}

// Result 是一次探测的结果：三态结论，加上可选的 OS 错误码与底层错误。
type Result struct {
	// Outcome 是探测结论。
	Outcome Outcome
	// Errno 是 OS 错误码，仅当 Outcome 为 [OsError] 时有意义。
	Errno int
	// Err 是底层错误，可为 nil。
	Err error
}

// Checker 是 OS 级探测协作方的契约。
//
// netsem 核心不实现也不依赖任何 Checker：bind/connect 探测涉及真实的
// 系统调用，是整个体系中唯一会阻塞、需要超时与资源获取的位置，
// 因此被隔离在此接口之后，由调用方按需提供实现并链接。
//
// 实现约定：
//   - 输入是核心产出的已验证 [netip.AddrPort]，实现不得对其再做解析
//   - 阻塞操作必须尊重 ctx 的取消与超时
//   - 结果通过 [Result] 的三态结论表达，不得 panic
type Checker interface {
	// CheckBind 探测 ap 是否可被本机绑定。
	CheckBind(ctx context.Context, ap netip.AddrPort) Result
	// CheckConnect 探测 ap 是否可被连接。
	CheckConnect(ctx context.Context, ap netip.AddrPort) Result
}
