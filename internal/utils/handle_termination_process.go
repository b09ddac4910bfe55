package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// HandleTerminationProcess выполняет cleanup при получении SIGINT или SIGTERM
// и завершает процесс. Бот закрывает здесь пул базы данных и останавливает
// обработку обновлений.
func HandleTerminationProcess(cleanup func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		cleanup()
		os.Exit(1)
	}()
}
