package xsock

import "testing"

// 任意输入映射为成功值或带类型的失败，绝不 panic，绝不返回部分结果。
func FuzzParseNoPanic(f *testing.F) {
	f.Add("127.0.0.1:8080")
	f.Add("[::1]:80")
	f.Add("::1:80")
	f.Add("[::1")
	f.Add(":80")
	f.Add("127.0.0.1:")
	f.Add("")
	f.Add("256.0.0.1:99999")
	f.Add("[fe80::1%eth0]:80")

	f.Fuzz(func(t *testing.T, s string) {
		ap, err := Parse(s)
		if err != nil {
			if ap.IsValid() {
				t.Fatalf("Parse(%q) returned error and a valid AddrPort", s)
			}
			return
		}
		// 往返：成功解析的结果经 String 再解析必须相等
		restored, err := Parse(ap.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed on canonical form of %q: %v", ap.String(), s, err)
		}
		if restored != ap {
			t.Errorf("round-trip mismatch: %q → %q → %q", s, ap, restored)
		}
	})
}
