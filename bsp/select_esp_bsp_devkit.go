//go:build esp_bsp_devkit

package bsp

const selectedBoardName = devKitName

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewESPDevKit(sp, log, DevKitOptions{LEDs: true, Buttons: true, Storage: true}), nil
}
