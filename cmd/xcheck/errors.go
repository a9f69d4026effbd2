package main

import (
	"fmt"
	"strings"
)

// exitError 表示输出已完成、只需设置非零退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// urfave/cli 的参数解析错误没有导出类型，只能按消息前缀识别。
var cliUsagePrefixes = []string{
	"flag provided but not defined",
	"invalid value",
	"flag needs an argument",
	"No help topic for",
	"Required flag",
	"Required flags",
}

func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, p := range cliUsagePrefixes {
		if strings.HasPrefix(msg, p) {
			return true
		}
	}
	return false
}
