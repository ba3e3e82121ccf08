package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type BaseLogger struct {
	mu     sync.Mutex
	prefix string
	writer io.Writer
}

func NewLogger(writer io.Writer, prefix string) *BaseLogger {
	return &BaseLogger{
		writer: writer,
		prefix: prefix,
	}
}

func (l *BaseLogger) Log(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(format, v...)
}

// FatalLog пишет сообщение и завершает процесс.
func (l *BaseLogger) FatalLog(format string, v ...interface{}) {
	l.mu.Lock()
	l.write(format, v...)
	l.mu.Unlock()
	os.Exit(1)
}

func (l *BaseLogger) write(format string, v ...interface{}) {
	message := fmt.Sprintf(l.prefix+" "+format, v...)
	if l.writer != nil {
		fmt.Fprintln(l.writer, message) // пишем в writer
	}
	log.Print(message) // дублируем в консоль
}

func (l *BaseLogger) WithPrefix(extraPrefix string) *BaseLogger {
	return &BaseLogger{
		writer: l.writer,
		prefix: l.prefix + " " + extraPrefix,
	}
}

func (l *BaseLogger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

func (l *BaseLogger) SetWriter(writer io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = writer
}
