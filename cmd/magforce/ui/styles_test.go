package ui

import (
	"testing"
)

func TestDetectThemeDefaultsToLight(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("MAGFORCE_DARK_MODE", "")

	theme := DetectTheme()
	if theme.IsDark {
		t.Error("expected light theme by default")
	}
}

func TestDetectThemeDarkFromColorFGBG(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	t.Setenv("MAGFORCE_DARK_MODE", "")

	theme := DetectTheme()
	if !theme.IsDark {
		t.Error("expected dark theme for dark background index")
	}
}

func TestDetectThemeEnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("MAGFORCE_DARK_MODE", "1")

	theme := DetectTheme()
	if !theme.IsDark {
		t.Error("expected dark theme from MAGFORCE_DARK_MODE")
	}
}

func TestStylesRenderContent(t *testing.T) {
	styles := NewStyles(LightTheme())

	for name, rendered := range map[string]string{
		"prompt": styles.Prompt.Render("Diameter (mm): "),
		"error":  styles.Error.Render("bad input"),
		"result": styles.Result.Render("71.02 kg"),
	} {
		if rendered == "" {
			t.Errorf("%s style rendered empty output", name)
		}
	}
}
