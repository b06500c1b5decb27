package exporters

import (
	"fmt"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// Render runs a format's content builder under the uniform failure
// policy: an error becomes a failure result carrying the underlying
// message, and a panic during construction is recovered and folded
// into the same envelope. Exporters never propagate either to the
// dispatcher.
func Render(format domain.Format, build func() (string, error)) (result domain.ExportResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.FailureResult(format, fmt.Sprint(r))
		}
	}()

	content, err := build()
	if err != nil {
		return domain.FailureResult(format, err.Error())
	}
	return domain.SuccessResult(format, content)
}
