package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessages(t *testing.T) {
	assert.Contains(t, FormatSuccess("opgeslagen"), SuccessIcon+" opgeslagen")
	assert.Contains(t, FormatWarning("geen draft"), WarningIcon+" geen draft")
	assert.Contains(t, FormatError("analyse mislukt"), ErrorIcon+" analyse mislukt")
}

func TestRenderBox(t *testing.T) {
	box := RenderBox("Analyse voltooid", "Orders: 3")

	assert.Contains(t, box, "Analyse voltooid")
	assert.Contains(t, box, "Orders: 3")
}
