//go:build esp_bsp_generic

package bsp

const selectedBoardName = genericName

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewESPGeneric(sp, log, GenericOptions{
		Display:     true,
		Width:       320,
		Height:      240,
		Backlight:   true,
		EnableTouch: true,
	}), nil
}
