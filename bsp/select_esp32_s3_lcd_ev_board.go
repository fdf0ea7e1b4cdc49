//go:build esp32_s3_lcd_ev_board

package bsp

const selectedBoardName = s3LCDEVName

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewESP32S3LCDEV(sp, log, S3LCDEVOptions{EnableTouch: true}), nil
}
