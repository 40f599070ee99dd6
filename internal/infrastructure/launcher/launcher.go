// Package launcher starts generated programs as detached processes.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

// ErrNoInterpreter is returned when no interpreter is configured or found on PATH.
var ErrNoInterpreter = errors.New("no interpreter found (set execution.interpreter)")

var defaultInterpreters = []string{"python3", "python"}

// LocalLauncher runs a file through an interpreter on the host.
type LocalLauncher struct {
	interpreter string
}

// NewLocalLauncher builds a launcher. An empty interpreter is looked up on
// PATH (python3, then python) at launch time.
func NewLocalLauncher(interpreter string) *LocalLauncher {
	return &LocalLauncher{interpreter: interpreter}
}

// Interpreter resolves the interpreter binary that Launch would use.
func (l *LocalLauncher) Interpreter() (string, error) {
	if l.interpreter != "" {
		return exec.LookPath(l.interpreter)
	}
	for _, name := range defaultInterpreters {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoInterpreter
}

// Launch implements ports.ProcessLauncher. The child gets no arguments and no
// stdio; the process handle is released right after start, so nothing waits
// on it.
func (l *LocalLauncher) Launch(path string) (domain.LaunchHandle, error) {
	interpreter, err := l.Interpreter()
	if err != nil {
		return domain.LaunchHandle{}, err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return domain.LaunchHandle{}, err
	}
	if _, err := os.Stat(target); err != nil {
		return domain.LaunchHandle{}, fmt.Errorf("artifact: %w", err)
	}

	c := exec.Command(interpreter, target)
	c.Stdin = nil
	c.Stdout = nil
	c.Stderr = nil
	detach(c)

	if err := c.Start(); err != nil {
		return domain.LaunchHandle{}, fmt.Errorf("start %s: %w", interpreter, err)
	}

	handle := domain.LaunchHandle{PID: c.Process.Pid, Path: target}
	_ = c.Process.Release()
	return handle, nil
}

var _ ports.ProcessLauncher = (*LocalLauncher)(nil)
