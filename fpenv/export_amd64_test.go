package fpenv

const UnderflowMask = 1 << 11

var (
	GetCSR = getcsr
	SetCSR = setcsr
)
