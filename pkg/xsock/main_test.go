package xsock

import (
	"testing"

	"go.uber.org/goleak"
)

// 解析与组合是纯计算，不得启动任何后台 goroutine。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
