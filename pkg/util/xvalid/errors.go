package xvalid

import "errors"

// ErrUnknownKind 表示未定义的校验规则。
var ErrUnknownKind = errors.New("xvalid: unknown kind")
