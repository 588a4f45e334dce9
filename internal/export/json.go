package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

// WriteJSON renders a report using the renderer contract shape:
// {type, sections: [{title, rows}]}.
func WriteJSON(report *model.Report, w io.Writer) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
