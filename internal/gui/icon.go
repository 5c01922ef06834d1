package gui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed spellbee.svg
var iconData []byte

//go:embed dancing_dog.svg
var dogData []byte

// GetAppIcon returns the application icon as a Fyne resource
func GetAppIcon() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "spellbee.svg",
		StaticContent: iconData,
	}
}

// GetRewardImage returns the dancing dog shown after a correct guess
func GetRewardImage() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "dancing_dog.svg",
		StaticContent: dogData,
	}
}
