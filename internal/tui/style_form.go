package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ebelikov/go-qr-studio/models"
)

const defaultImageSize = 256

var styleFieldLabels = []string{"Size", "Foreground", "Background", "Level"}

func newStyleInputs() []textinput.Model {
	placeholders := []string{"256", "#000000", "#FFFFFF", "L, M, Q or H"}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.Width = 20
		inputs[i] = in
	}
	inputs[0].Focus()
	return inputs
}

// collectStyle folds the style inputs into render options. Empty fields fall
// back to the server defaults; only the size needs parsing locally.
func collectStyle(inputs []textinput.Model) (models.RenderOptions, error) {
	opts := models.RenderOptions{Size: defaultImageSize}

	if v := strings.TrimSpace(inputs[0].Value()); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return opts, fmt.Errorf("size must be a positive number")
		}
		opts.Size = size
	}

	opts.Foreground = strings.TrimSpace(inputs[1].Value())
	opts.Background = strings.TrimSpace(inputs[2].Value())

	if v := strings.ToUpper(strings.TrimSpace(inputs[3].Value())); v != "" {
		switch models.ErrorCorrection(v) {
		case models.ECLow, models.ECMedium, models.ECQuartile, models.ECHigh:
			opts.Level = models.ErrorCorrection(v)
		default:
			return opts, fmt.Errorf("level must be one of L, M, Q, H")
		}
	}

	return opts, nil
}
