package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/appgen/internal/domain"
)

const (
	msgPopupHint = "If it's a game or calculator, a popup window will appear."
)

// RenderOutcome prints the user-facing result of one generate run.
// Pipeline errors are not printed here; the caller returns them to main.
func RenderOutcome(out, errOut io.Writer, outcome domain.GenerationOutcome) {
	if outcome.State == domain.StateIdle && outcome.Warning != "" {
		fmt.Fprintf(errOut, "Warning: %s\n", outcome.Warning)
		return
	}
	if !outcome.Succeeded() {
		return
	}

	fmt.Fprintf(out, "App generated successfully in %.2f seconds!\n", outcome.Result.ElapsedSeconds())
	if outcome.Artifact != nil {
		fmt.Fprintf(out, "Saved: %s (%d bytes)\n", outcome.Artifact.Path, outcome.Artifact.Size)
	}
	if outcome.Launch != nil {
		fmt.Fprintf(out, "Launched: pid %d\n", outcome.Launch.PID)
		fmt.Fprintln(out, msgPopupHint)
	}
	if outcome.State == domain.StateCompletedWithWarning && outcome.Warning != "" {
		fmt.Fprintf(errOut, "Warning: %s\n", outcome.Warning)
	}
}
