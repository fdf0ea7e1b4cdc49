//go:build m5stack_core_s3

package bsp

const selectedBoardName = coreS3Name

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewM5StackCoreS3(sp, log), nil
}
