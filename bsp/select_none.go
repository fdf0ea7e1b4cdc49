//go:build !m5stack_core_s3 && !m5stack_tab5 && !m5_atom_s3 && !esp_box_3 && !esp_bsp_devkit && !esp_bsp_generic && !esp32_p4_function_ev && !esp32_s3_lcd_ev_board

package bsp

import "fmt"

// Builds without a board tag get this fallback. Selecting two tags at
// once fails to compile instead: both tagged files then define
// selectedBoardName.
const selectedBoardName = ""

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return nil, fmt.Errorf("no board selected, build with a board tag such as m5stack_core_s3: %w", ErrNotSupported)
}
