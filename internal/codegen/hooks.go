package codegen

// Hook short names, bit-exact with the wire contract the runtime hook
// table exposes. Preserve these verbatim; they are not this package's
// to rename.
const (
	ScriptEnter = "Se"
	ScriptExit  = "Sx"

	FuncEnter = "Fe"
	FuncExit  = "Fx"

	BuildCall   = "F"
	BuildMethod = "M"

	Return   = "Re"
	Throw    = "Th"
	Uncaught = "X"

	ExprResult = "E"
	LiteralOp  = "L"

	ReadOp    = "R"
	WriteOp   = "W"
	DeclareOp = "D"

	BinaryOp = "B"
	UnaryOp  = "U"
	UpdateOp = "Up"

	ConditionOp   = "C"
	SwitchLeftOp  = "Swl"
	SwitchRightOp = "Swr"

	GetFieldOp = "G"
	PutFieldOp = "P"
	DeleteOp   = "De"

	ForObjectOp = "O"
)

// LiteralTypeCode mirrors the fixed literal kind-to-integer mapping the
// L hook's optional third argument carries.
type LiteralTypeCode int

const (
	LiteralString LiteralTypeCode = 0
	LiteralBool   LiteralTypeCode = 1
	LiteralNull   LiteralTypeCode = 2
	LiteralNumber LiteralTypeCode = 3
	LiteralRegExp LiteralTypeCode = 4
	LiteralBigInt LiteralTypeCode = 5
)
