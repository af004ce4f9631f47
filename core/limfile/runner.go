package limfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
)

const (
	fillDirName   = "fillLimits"
	fillExeName   = "FillLimits.exe"
	fillIniName   = "info.ini"
	outputLogName = "output.log"
)

// exitCodeDescriptions maps the importer's exit codes to the fixed
// descriptions from its documentation.
var exitCodeDescriptions = map[int]string{
	0: "Ошибок нет. Позиции сохранены в файл или загружены из файла",
	1: "Не удалось установить соединение с Сервером QUIK",
	2: "Ошибка доступа к файлу импорта/экспорта",
	3: "Недоступна транзакция для работы с ограничениями по клиентским счетам",
	4: "Ошибка синтаксиса в файле импорта",
	5: "Прочие ошибки",
}

// ExitCodeDescription returns the human-readable description of an
// importer exit code; unknown codes get the generic fallback.
func ExitCodeDescription(code int) string {
	if desc, ok := exitCodeDescriptions[code]; ok {
		return desc
	}
	return "Неизвестный код завершения"
}

// Report is the structured outcome of one importer run.
type Report struct {
	ExitCode            int    `json:"exitCode"`
	ExitCodeDescription string `json:"exitCodeDescription"`
	Stdout              string `json:"stdout,omitempty"`
	Stderr              string `json:"stderr,omitempty"`
	OutputLog           string `json:"outputLog"`
	OutputLogError      string `json:"outputLogError,omitempty"`
}

// Success reports whether the importer accepted the file.
func (r *Report) Success() bool {
	return r.ExitCode == 0
}

// Runner drives the external limit importer. Concurrent runs share the
// importer working directory and may race on its output log; callers
// are expected not to overlap invocations.
type Runner struct {
	root string
	log  logging.Logger
}

// NewRunner creates a runner rooted at dir; the importer lives in
// dir/fillLimits.
func NewRunner(dir string) *Runner {
	return &Runner{root: dir, log: logging.New("fill-limits")}
}

// Run invokes the importer against a previously written lim file and
// parses exit code plus the legacy-encoded log file it leaves behind.
// A non-zero exit is part of the Report, not an error; the error return
// covers launch failures only.
func (r *Runner) Run(ctx context.Context, limFileName string) (*Report, error) {
	cwd := filepath.Join(r.root, fillDirName)
	exePath := filepath.Join(cwd, fillExeName)
	limArg := filepath.Join("..", limDirName, limFileName)

	r.log.Infof("Running %s %s %s", exePath, limArg, fillIniName)

	cmd := exec.CommandContext(ctx, exePath, limArg, fillIniName)
	cmd.Dir = cwd

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			// The process never started; there is no exit code to report.
			return nil, fmt.Errorf("failed to run importer: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	report := &Report{
		ExitCode:            exitCode,
		ExitCodeDescription: ExitCodeDescription(exitCode),
		Stdout:              stdout.String(),
		Stderr:              stderr.String(),
	}

	outputLog, logErr := readOutputLog(cwd)
	report.OutputLog = outputLog
	if logErr != nil {
		report.OutputLogError = logErr.Error()
	}

	if report.Success() {
		r.log.Infof("Importer finished: %s", report.ExitCodeDescription)
	} else {
		r.log.Warnf("Importer exited with code %d: %s", report.ExitCode, report.ExitCodeDescription)
	}

	return report, nil
}

// readOutputLog reads and decodes the Windows-1251 log the importer
// writes as a side effect.
func readOutputLog(cwd string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(cwd, outputLogName))
	if err != nil {
		return "", err
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
