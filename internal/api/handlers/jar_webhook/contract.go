package jar_webhook

import "context"

type JarService interface {
	ApplyStatement(ctx context.Context, account string, balanceMinor int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
