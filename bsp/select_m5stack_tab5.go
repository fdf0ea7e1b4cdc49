//go:build m5stack_tab5

package bsp

const selectedBoardName = tab5Name

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewM5StackTab5(sp, log, Tab5Options{EnableTouch: true}), nil
}
