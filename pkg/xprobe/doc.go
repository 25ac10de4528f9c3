// Package xprobe 定义 OS 级可用性探测的接口边界。
//
// netsem 的解析与分类核心是纯计算：不阻塞、无 I/O、无状态。
// 真正的 bind/connect 探测必须触达操作系统，因此被隔离在
// [Checker] 接口之后——本包只定义契约（输入为核心产出的
// [net/netip.AddrPort]，输出为 [Result] 三态结论），不提供实现。
// 需要探测能力的调用方自行实现并注入 Checker；不需要的调用方
// 不会链接进任何 OS 级依赖。
package xprobe
