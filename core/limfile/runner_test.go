package limfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeDescriptions(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "Ошибок нет. Позиции сохранены в файл или загружены из файла"},
		{1, "Не удалось установить соединение с Сервером QUIK"},
		{2, "Ошибка доступа к файлу импорта/экспорта"},
		{3, "Недоступна транзакция для работы с ограничениями по клиентским счетам"},
		{4, "Ошибка синтаксиса в файле импорта"},
		{5, "Прочие ошибки"},
		{42, "Неизвестный код завершения"},
		{-1, "Неизвестный код завершения"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExitCodeDescription(tt.code))
	}
}

func TestReportSuccess(t *testing.T) {
	assert.True(t, (&Report{ExitCode: 0}).Success())
	assert.False(t, (&Report{ExitCode: 2}).Success())
}
