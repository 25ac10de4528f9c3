// Package xsock 提供套接字地址的组合与解析。
//
// 套接字地址是 (IP, 端口) 的有序对，以 [net/netip.AddrPort] 承载。
// 本包没有自己的分类逻辑：两个分量分别委托
// [github.com/omeyang/netsem/pkg/xip] 与
// [github.com/omeyang/netsem/pkg/xport] 校验和分类，
// 组合本身不引入新的不变量。
//
// # 快速示例
//
//	ap, err := xsock.Parse("127.0.0.1:8080")
//	if err != nil {
//	    // ...
//	}
//	ipc, pc := xsock.Classify(ap)
//	fmt.Println(ipc, pc) // loopback user
//
// # 拆分规则
//
// IPv6 字面量必须加方括号（"[::1]:80"）。未加方括号且含多个 ':'
// 的输入（"::1:80"）返回 [ErrAmbiguous] 而非猜测拆分位置。
// 两个分量都无效时报告 host 错误，保证调用方收到确定性的单一错误。
//
// # 纯函数保证
//
// 与 xip/xport 相同：无状态、无 I/O、无日志，任意并发安全。
// 真正的 bind/connect 探测在
// [github.com/omeyang/netsem/pkg/xprobe] 的接口边界之后，
// 由调用方按需提供实现，本包与其无依赖关系。
package xsock
