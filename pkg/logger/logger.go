// Package logger 提供进程级的结构化日志
//
// 用法与 log.Printf 相近，消息保留 "[SystemName]" 前缀，附加字段以键值对传入：
//
//	logger.L().Infow("[LevelSystem] level started", "level", cfg.ID, "spawners", n)
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	current = zap.NewNop().Sugar()
)

// Init 初始化全局日志（控制台编码，输出到 stderr）
// verbose 为 true 时输出 Debug 级别
func Init(verbose bool) error {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      verbose,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !verbose,
	}

	zapLogger, err := config.Build()
	if err != nil {
		return err
	}
	Set(zapLogger)
	return nil
}

// Set 替换全局日志（测试中可传入 zaptest/observer 构造的 logger）
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l.Sugar()
}

// L 返回全局 SugaredLogger，未初始化时为 Nop
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Sync 刷新缓冲区，程序退出前调用
func Sync() {
	_ = L().Sync()
}
