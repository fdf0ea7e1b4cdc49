//go:build esp_box_3

package bsp

const selectedBoardName = box3Name

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewESPBox3(sp, log), nil
}
