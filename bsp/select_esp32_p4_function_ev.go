//go:build esp32_p4_function_ev

package bsp

const selectedBoardName = p4Name

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewESP32P4FunctionEV(sp, log, P4Options{EnableTouch: true}), nil
}
