//go:build m5_atom_s3

package bsp

const selectedBoardName = atomS3Name

func newSelectedBoard(sp SupportPackage, log Logger) (Board, error) {
	return NewM5AtomS3(sp, log), nil
}
